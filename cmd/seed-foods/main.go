// Seeds the foods table with the starter catalog. Destructive: existing
// foods are wiped first.
package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/Jazz7-Dev/FoodY.com/configs"
	"github.com/Jazz7-Dev/FoodY.com/internal/adapter/repo"
	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
)

var foods = []domain.Food{
	{
		Name:        "Pizza",
		Price:       10,
		Description: "Delicious cheese pizza with fresh toppings",
		Image:       "https://example.com/images/pizza.jpg",
	},
	{
		Name:        "Burger",
		Price:       6,
		Description: "Juicy beef burger with lettuce and tomato",
		Image:       "https://example.com/images/burger.jpg",
	},
	{
		Name:        "Pasta",
		Price:       8,
		Description: "Creamy Alfredo pasta with chicken",
		Image:       "https://example.com/images/pasta.jpg",
	},
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	for i := range foods {
		foods[i].ID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repo.NewMySQLFoodRepo(db).Replace(ctx, foods); err != nil {
		log.Fatal(err)
	}
	log.Printf("seeded %d foods", len(foods))
}
