package gcp

import (
	"cloud.google.com/go/firestore"
	"context"
	"log"
)

// CreateFirestore builds the Firestore client. The caller owns Close.
func CreateFirestore(ctx context.Context, projectID string) *firestore.Client {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to create firestore client: %v", err)
	}
	return client
}
