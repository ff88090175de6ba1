package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kusasa/backend/config"
	"github.com/kusasa/backend/models"
)

// FirestoreCatalog reads job listings from a Firestore collection
type FirestoreCatalog struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreCatalog creates a new Firestore catalog source
func NewFirestoreCatalog(ctx context.Context, cfg *config.Config) (*FirestoreCatalog, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreCatalog{client: client, collection: cfg.CatalogCollection}, nil
}

// Close closes the Firestore client
func (f *FirestoreCatalog) Close() error {
	return f.client.Close()
}

// Load reads every document in the collection, ordered by document ID.
// A document without an "id" field takes its document ID.
func (f *FirestoreCatalog) Load(ctx context.Context) ([]models.Job, error) {
	iter := f.client.Collection(f.collection).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var jobs []models.Job
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			switch status.Code(err) {
			case codes.NotFound:
				return nil, fmt.Errorf("catalog collection %q not found: %w", f.collection, err)
			case codes.PermissionDenied:
				return nil, fmt.Errorf("no access to catalog collection %q: %w", f.collection, err)
			}
			return nil, fmt.Errorf("failed to query jobs: %w", err)
		}

		var job models.Job
		if err := doc.DataTo(&job); err != nil {
			return nil, fmt.Errorf("failed to parse job %s: %w", doc.Ref.ID, err)
		}
		if job.ID == "" {
			job.ID = doc.Ref.ID
		}
		jobs = append(jobs, job)
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("catalog collection %q has no documents", f.collection)
	}
	return jobs, nil
}
