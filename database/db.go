package database

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/Martial4034/gigi-sales-leaderboard/config"
)

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// InitDB initializes the Firestore connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var opts []option.ClientOption
	if config.AppConfig.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.AppConfig.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, config.AppConfig.FirestoreProjectID, opts...)
	if err != nil {
		log.Fatalf("failed to connect to Firestore: %v", err)
	}
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}
