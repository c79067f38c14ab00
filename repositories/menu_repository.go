package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kathirfood/menu_backend/config"
	"github.com/kathirfood/menu_backend/models"
)

// Store failure values. ErrStorageUnavailable covers driver errors and
// exhausted timeouts; it is distinct from ErrNotFound so handlers can
// answer 404 vs 500 without inspecting driver internals.
var (
	ErrNotFound           = errors.New("menu item not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// storageTimeout bounds every storage call so a slow or partitioned
// database surfaces as ErrStorageUnavailable instead of a hung request.
const storageTimeout = 10 * time.Second

const listCacheKey = "menu:all"
const listCacheTTL = 30 * time.Second

// MenuRepository is the catalog store: the single authority over the
// menuitems collection. It validates drafts against the data-model
// invariants before any write and assigns ids and timestamps itself.
//
// Ordering contract: FindAll and FindByCategory return items
// newest-first (createdAt descending). The query engine relies on this
// order as its stable-sort tiebreak, so it is a documented guarantee of
// this type, not an incidental behavior.
type MenuRepository struct {
	collection *mongo.Collection
	cache      *redis.Client
}

// NewMenuRepository creates a repository over the menuitems collection.
// cache may be nil; reads then always hit MongoDB.
func NewMenuRepository(client *mongo.Client, cache *redis.Client) *MenuRepository {
	return &MenuRepository{
		collection: config.GetCollection(client, "menuitems"),
		cache:      cache,
	}
}

// FindAll returns every menu item, newest-first. Results are served
// from the redis cache when a fresh copy exists.
func (r *MenuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	if items, ok := r.cachedList(ctx); ok {
		return items, nil
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storageErr(err)
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, storageErr(err)
	}

	r.storeList(ctx, items)
	return items, nil
}

// FindByCategory returns the items in one category, newest-first.
func (r *MenuRepository) FindByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, storageErr(err)
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, storageErr(err)
	}
	return items, nil
}

// FindByID returns one item or ErrNotFound. An id that is not a valid
// ObjectID is reported as not found rather than as a storage failure.
func (r *MenuRepository) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	var item models.MenuItem
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return &item, nil
}

// Insert validates the draft, assigns id and timestamps and persists the
// new item. The returned item is the persisted document.
func (r *MenuRepository) Insert(ctx context.Context, draft *models.MenuItemDraft) (*models.MenuItem, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := models.MenuItem{
		ID:           primitive.NewObjectID(),
		Name:         draft.Name,
		Category:     draft.Category,
		Price:        draft.Price,
		Description:  draft.Description,
		IsVegetarian: draft.IsVegetarian,
		IsAvailable:  draft.Available(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return nil, storageErr(err)
	}

	r.invalidateList(ctx)
	return &item, nil
}

// Replace validates the draft and replaces the document in full,
// keeping the original id and createdAt and refreshing updatedAt.
func (r *MenuRepository) Replace(ctx context.Context, id string, draft *models.MenuItemDraft) (*models.MenuItem, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":         draft.Name,
			"category":     draft.Category,
			"price":        draft.Price,
			"description":  draft.Description,
			"isVegetarian": draft.IsVegetarian,
			"isAvailable":  draft.Available(),
			"updatedAt":    time.Now().UTC(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item models.MenuItem
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr(err)
	}

	r.invalidateList(ctx)
	return &item, nil
}

// Delete removes one item permanently. There is no soft delete.
func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return storageErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	r.invalidateList(ctx)
	return nil
}

// storageErr maps any driver or timeout failure onto the single
// storage-unavailable error so no internal detail leaks upward.
func storageErr(err error) error {
	log.Printf("menu repository storage error: %v", err)
	return ErrStorageUnavailable
}

func (r *MenuRepository) cachedList(ctx context.Context) ([]models.MenuItem, bool) {
	if r.cache == nil {
		return nil, false
	}
	payload, err := r.cache.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.MenuItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (r *MenuRepository) storeList(ctx context.Context, items []models.MenuItem) {
	if r.cache == nil {
		return
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	// Cache failures are invisible to callers; the next read goes to mongo.
	r.cache.Set(ctx, listCacheKey, payload, listCacheTTL)
}

func (r *MenuRepository) invalidateList(ctx context.Context) {
	if r.cache == nil {
		return
	}
	r.cache.Del(ctx, listCacheKey)
}
