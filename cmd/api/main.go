package main

import (
	"context"
	"os"
	"time"

	"ecshop/internal/bootstrap"
	"ecshop/internal/config"
	"ecshop/internal/domain/model"
	"ecshop/internal/handler"
	"ecshop/internal/infra/db"
	infraRepo "ecshop/internal/infra/repository"
	"ecshop/internal/infra/storage"
	"ecshop/internal/server"
	"ecshop/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(cfg config.Config) *jwtIssuer {
	return &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: cfg.JWTTTL,
	}
}

func (i *jwtIssuer) Issue(username string, email string, roles []string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":   username,
		"email": email,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// .envは無くてもよい
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Address{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.PriceHistory{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto migrate")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	roleRepo := infraRepo.NewRoleGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	historyRepo := infraRepo.NewPriceHistoryGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	imageStore := storage.NewImageStore(cfg.ImageDir)
	issuer := newJWTIssuer(cfg)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, roleRepo, issuer)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, userRepo, txManager)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo, userRepo, txManager)
	orderUC := usecase.NewOrderUsecase(txManager)
	historyUC := usecase.NewPriceHistoryUsecase(historyRepo, productRepo, userRepo)
	addressUC := usecase.NewAddressUsecase(addressRepo, userRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Category:     handler.NewCategoryHandler(categoryUC),
		Product:      handler.NewProductHandler(productUC, imageStore),
		Cart:         handler.NewCartHandler(cartUC),
		Order:        handler.NewOrderHandler(orderUC),
		PriceHistory: handler.NewPriceHistoryHandler(historyUC),
		Address:      handler.NewAddressHandler(addressUC),
	}

	//ロールとデモユーザーのシード
	if err := bootstrap.Seed(context.Background(), userRepo, roleRepo, cartRepo, log); err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	e := server.New(cfg, handlers)

	log.Info().Str("port", cfg.Port).Msg("starting api server")
	if err := server.Start(e, cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
