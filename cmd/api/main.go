package main

import (
	"log"

	"github.com/joho/godotenv"

	"literary-calendar/backend/internal/database"
	"literary-calendar/backend/internal/repositories"
	"literary-calendar/backend/internal/routes"
)

func main() {
	// .env がなくても環境変数が直接設定されていれば動くので、エラーは警告に留める
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := database.InitDB()
	defer db.Close()

	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Fatal: Failed to migrate database: %v", err)
	}

	r := routes.SetupRouter(db)

	// サーバー起動
	log.Println("Server listening on port 8080...")
	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
