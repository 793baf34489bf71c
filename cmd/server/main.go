package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"receitas_backend/internal/app/di"
	"receitas_backend/internal/app/router"
	authadapters "receitas_backend/internal/feature/auth/adapters"
	authhandler "receitas_backend/internal/feature/auth/transport/handler"
	authusecase "receitas_backend/internal/feature/auth/usecase"
	recipeadapters "receitas_backend/internal/feature/recipes/adapters"
	recipehandler "receitas_backend/internal/feature/recipes/transport/handler"
	recipeusecase "receitas_backend/internal/feature/recipes/usecase"
	"receitas_backend/internal/platform/config"
	infradb "receitas_backend/internal/platform/db"
	infraredis "receitas_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	// db
	db := infradb.OpenDB()

	// Redis (optional; sessions fall back to the database without it)
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Sessions stored in the database.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	recipeRepo := recipeadapters.NewRecipeGorm(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, authusecase.Options{
		MinSenhaLen: cfg.MinSenhaLen,
		BcryptCost:  cfg.BcryptCost,
	})
	recipesUC := recipeusecase.NewRecipesUsecase(recipeRepo, authUC)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	recipesH := recipehandler.NewRecipeHandler(recipesUC)

	r := router.NewRouter(authH, recipesH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
