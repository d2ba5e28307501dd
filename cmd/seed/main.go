// Command seed wipes and re-imports the users and restaurants collections
// from JSON exports. It is an external caller of the store layer: the API
// services are not involved, which is also why imported records keep their
// original string identifiers as native keys.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/term"

	"github.com/lunchboxd/lunchboxd-server/internal/flagx"
	"github.com/lunchboxd/lunchboxd-server/internal/server/auth"
	"github.com/lunchboxd/lunchboxd-server/internal/server/config"
	"github.com/lunchboxd/lunchboxd-server/internal/server/models"
	"github.com/lunchboxd/lunchboxd-server/internal/server/repositories/users"
	"github.com/lunchboxd/lunchboxd-server/internal/server/storage"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	_ = godotenv.Load()

	var usersFile, dataFile string
	var createAdmin bool

	// config-layer flags pass through untouched, the way the config
	// package ignores ours
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	fs.StringVar(&usersFile, "users", "", "path to users JSON export")
	fs.StringVar(&dataFile, "data", "", "path to restaurants JSON export")
	fs.BoolVar(&createAdmin, "admin", false, "create an admin account (prompts for password)")
	_ = fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-users", "-data", "-admin"}))

	cfg := config.LoadConfig()
	ctx := context.Background()

	store, err := storage.NewStore(ctx, cfg.MongoURI, cfg.DatabaseName, cfg.StoreTimeout)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}
	defer store.Close(ctx)

	if usersFile != "" {
		n, err := importUsers(ctx, store, usersFile)
		if err != nil {
			log.Fatalf("importing users: %v", err)
		}
		fmt.Printf("Imported %d users.\n", n)
	}

	if dataFile != "" {
		n, err := importRestaurants(ctx, store, dataFile)
		if err != nil {
			log.Fatalf("importing restaurants: %v", err)
		}
		fmt.Printf("Imported %d restaurants.\n", n)
	}

	if createAdmin {
		if err := createAdminUser(ctx, store); err != nil {
			log.Fatalf("creating admin: %v", err)
		}
		fmt.Println("Admin account created.")
	}
}

// importUsers replaces the users collection with the export's contents,
// hashing plaintext passwords and moving the exported "id" into the
// native key field.
func importUsers(ctx context.Context, store *storage.Store, path string) (int, error) {
	docs, err := readDocs(path)
	if err != nil {
		return 0, err
	}

	cleaned := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		if pw, ok := doc["password"].(string); ok {
			digest, err := auth.HashPassword(pw)
			if err != nil {
				return 0, err
			}
			doc["password"] = digest
		}
		if id, ok := doc["id"]; ok {
			doc["_id"] = id
			delete(doc, "id")
		}
		cleaned = append(cleaned, doc)
	}

	cctx, cancel := store.WithTimeout(ctx)
	defer cancel()

	if _, err := store.Users().DeleteMany(cctx, bson.M{}); err != nil {
		return 0, storage.TranslateError(err)
	}
	if len(cleaned) == 0 {
		return 0, nil
	}
	if _, err := store.Users().InsertMany(cctx, cleaned); err != nil {
		return 0, storage.TranslateError(err)
	}

	return len(cleaned), nil
}

// importRestaurants replaces the restaurants collection, renaming the
// export's legacy field names to the stored ones.
func importRestaurants(ctx context.Context, store *storage.Store, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var payload struct {
		Restaurants []map[string]any `json:"restaurants"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return 0, err
	}

	cleaned := make([]interface{}, 0, len(payload.Restaurants))
	for _, doc := range payload.Restaurants {
		renameField(doc, "budgetRange", "priceRange")
		renameField(doc, "profileImage", "image")
		renameField(doc, "id", "_id")
		cleaned = append(cleaned, doc)
	}

	cctx, cancel := store.WithTimeout(ctx)
	defer cancel()

	if _, err := store.Restaurants().DeleteMany(cctx, bson.M{}); err != nil {
		return 0, storage.TranslateError(err)
	}
	if len(cleaned) == 0 {
		return 0, nil
	}
	if _, err := store.Restaurants().InsertMany(cctx, cleaned); err != nil {
		return 0, storage.TranslateError(err)
	}

	return len(cleaned), nil
}

func createAdminUser(ctx context.Context, store *storage.Store) error {
	fmt.Print("Enter admin password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	digest, err := auth.HashPassword(string(pw))
	if err != nil {
		return err
	}

	repo := users.NewMongoRepository(store)
	_, err = repo.Create(ctx, &models.User{
		Username:  "admin",
		Email:     "admin@lunchboxd.local",
		FirstName: "Admin",
		LastName:  "User",
		Password:  digest,
	})
	return err
}

func readDocs(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var docs []map[string]any
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func renameField(doc map[string]any, from, to string) {
	if v, ok := doc[from]; ok {
		doc[to] = v
		delete(doc, from)
	}
}
