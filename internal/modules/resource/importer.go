package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mindhaven/core/internal/models"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultMaxItems = 50
	fetchTimeout    = 10 * time.Second
	// Feeds are untrusted; never buffer more than this.
	maxFeedBytes = 4 << 20
)

// Importer ingests resource records from an external JSON feed, best-effort:
// items are isolated from each other (one bad row must not sink the batch)
// while the batch itself commits exactly once at the end.
type Importer struct {
	db     *gorm.DB
	client *http.Client
	log    *zap.Logger
}

func NewImporter(db *gorm.DB, log *zap.Logger) *Importer {
	return &Importer{
		db:     db,
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
	}
}

// Import fetches feedURL and stores up to maxItems new resources. A zero cap
// processes nothing; callers resolve defaults before calling. The fetch
// completes before any transaction opens so network latency never holds a
// lock on the resources table.
func (im *Importer) Import(ctx context.Context, feedURL string, maxItems int) (*ImportResult, error) {
	body, err := im.fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, errUpstreamJSON
	}
	root := gjson.ParseBytes(body)
	items := root
	if !root.IsArray() {
		// Some providers nest the list under a "data" key.
		if data := root.Get("data"); data.IsArray() {
			items = data
		} else {
			return nil, errUpstreamShape
		}
	}

	result := &ImportResult{
		Message: "Fetch complete",
		Created: []CreatedItem{},
		Skipped: []SkippedItem{},
	}

	err = im.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items.Array() {
			if result.Processed >= maxItems {
				break
			}
			result.Processed++
			im.importOne(tx, item, result)
		}
		return nil
	})
	if err != nil {
		// The final commit failed: nothing from this batch was stored.
		im.log.Error("resource import commit failed", zap.Error(err))
		return nil, fmt.Errorf("failed to save fetched resources: %w", err)
	}

	result.CreatedCount = len(result.Created)
	return result, nil
}

// importOne maps a feed item through the field-alias scheme and stages an
// insert. A storage failure rolls back only this item via savepoint.
func (im *Importer) importOne(tx *gorm.DB, item gjson.Result, result *ImportResult) {
	title := firstString(item, "title", "headline", "name")
	url := firstString(item, "url", "link")
	if title == "" || url == "" {
		result.Skipped = append(result.Skipped, SkippedItem{Reason: "missing title or url"})
		return
	}

	// Dedup by URL; rows staged earlier in this batch are visible here.
	var count int64
	if err := tx.Model(&models.ResourceModel{}).Where("url = ?", url).Count(&count).Error; err != nil {
		result.Skipped = append(result.Skipped, SkippedItem{URL: url, Reason: "db error: " + err.Error()})
		return
	}
	if count > 0 {
		result.Skipped = append(result.Skipped, SkippedItem{URL: url, Reason: "exists"})
		return
	}

	resourceType := firstString(item, "resource_type", "type")
	if resourceType == "" {
		resourceType = "article"
	}

	r := models.ResourceModel{
		Title:        title,
		Summary:      firstString(item, "summary", "description", "excerpt"),
		URL:          url,
		Source:       firstString(item, "source", "publisher"),
		ResourceType: resourceType,
		Tags:         tagsFrom(item),
		PublishedAt:  parsePublishedAt(item.Get("published_at").String()),
		Verified:     false,
	}

	sp := fmt.Sprintf("import_item_%d", result.Processed)
	tx.SavePoint(sp)
	if err := tx.Create(&r).Error; err != nil {
		tx.RollbackTo(sp)
		im.log.Warn("resource import item failed", zap.String("url", url), zap.Error(err))
		result.Skipped = append(result.Skipped, SkippedItem{URL: url, Reason: "db error: " + err.Error()})
		return
	}
	result.Created = append(result.Created, CreatedItem{ID: r.ID, URL: url})
}

func (im *Importer) fetch(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errFetchFailed, err)
	}
	resp, err := im.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", errUpstreamState, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errFetchFailed, err)
	}
	return body, nil
}

func firstString(item gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := item.Get(key); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

func tagsFrom(item gjson.Result) string {
	v := item.Get("tags")
	if !v.Exists() {
		v = item.Get("keywords")
	}
	if !v.Exists() {
		return ""
	}
	if v.IsArray() {
		tags := []string{}
		for _, t := range v.Array() {
			tags = append(tags, t.String())
		}
		return models.JoinTags(tags)
	}
	return v.String()
}
