package main

import (
	"context"
	"log"
	"os"

	"laptop-dss-be/internal/entity"
	"laptop-dss-be/internal/repository/implementation"
	"laptop-dss-be/internal/service"
	"laptop-dss-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// sample pool covering the whole price and spec spread, so every preset has
// something to recommend on a fresh install.
var laptops = []*entity.Laptop{
	{Name: "Asus TUF Gaming A15", Price: 14_500_000, RAM: 16, SSD: 512, Display: 15.6, GPU: 6, Rating: 4.5},
	{Name: "Lenovo LOQ 15 Gaming", Price: 13_200_000, RAM: 16, SSD: 512, Display: 15.6, GPU: 6, Rating: 4.4},
	{Name: "Acer Nitro V 15", Price: 11_800_000, RAM: 16, SSD: 512, Display: 15.6, GPU: 6, Rating: 4.3},
	{Name: "HP Victus 16", Price: 15_900_000, RAM: 16, SSD: 1024, Display: 16.1, GPU: 8, Rating: 4.4},
	{Name: "MSI Katana 15", Price: 16_800_000, RAM: 16, SSD: 1024, Display: 15.6, GPU: 8, Rating: 4.2},
	{Name: "Lenovo Legion 5 Pro", Price: 24_500_000, RAM: 32, SSD: 1024, Display: 16.0, GPU: 8, Rating: 4.8},
	{Name: "Asus ROG Strix G16", Price: 27_900_000, RAM: 32, SSD: 1024, Display: 16.0, GPU: 8, Rating: 4.7},
	{Name: "Asus Vivobook 14", Price: 7_200_000, RAM: 8, SSD: 512, Display: 14.0, GPU: 0, Rating: 4.3},
	{Name: "Acer Aspire 3 Slim", Price: 5_400_000, RAM: 8, SSD: 256, Display: 14.0, GPU: 0, Rating: 4.1},
	{Name: "Lenovo IdeaPad Slim 3", Price: 6_300_000, RAM: 8, SSD: 512, Display: 15.6, GPU: 0, Rating: 4.2},
	{Name: "HP 14s", Price: 6_800_000, RAM: 8, SSD: 512, Display: 14.0, GPU: 0, Rating: 4.0},
	{Name: "Infinix Inbook X3", Price: 4_900_000, RAM: 8, SSD: 256, Display: 14.0, GPU: 0, Rating: 3.9},
	{Name: "Asus Zenbook 14 OLED", Price: 13_500_000, RAM: 16, SSD: 512, Display: 14.0, GPU: 0, Rating: 4.6},
	{Name: "Lenovo ThinkPad E14", Price: 12_700_000, RAM: 16, SSD: 512, Display: 14.0, GPU: 0, Rating: 4.5},
	{Name: "HP Pavilion Plus 14", Price: 11_900_000, RAM: 16, SSD: 512, Display: 14.0, GPU: 0, Rating: 4.3},
	{Name: "Dell Inspiron 14", Price: 10_400_000, RAM: 16, SSD: 512, Display: 14.0, GPU: 0, Rating: 4.2},
	{Name: "MacBook Air M2", Price: 16_500_000, RAM: 8, SSD: 256, Display: 13.6, GPU: 0, Rating: 4.8},
	{Name: "Huawei MateBook D14", Price: 8_900_000, RAM: 8, SSD: 512, Display: 14.0, GPU: 0, Rating: 4.2},
	{Name: "Acer Swift Go 14", Price: 9_800_000, RAM: 16, SSD: 512, Display: 14.0, GPU: 0, Rating: 4.4},
	{Name: "Asus ProArt Studiobook 16", Price: 32_500_000, RAM: 32, SSD: 1024, Display: 16.0, GPU: 8, Rating: 4.7},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	repo := implementation.NewLaptopRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		color.Red("Error: Failed to count laptops: %v", err)
		os.Exit(1)
	}
	if count > 0 {
		color.Yellow("Dataset already has %d laptops, skipping seed", count)
		return
	}

	for _, l := range laptops {
		l.Id = uuid.New()
		l.Category = service.Categorize(l)
	}

	if err := repo.CreateBatch(ctx, laptops); err != nil {
		color.Red("Error: Failed to seed laptops: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Seeded %d laptops", len(laptops))
	for _, l := range laptops {
		color.White("  %-30s %-8s Rp %.0f", l.Name, l.Category, l.Price)
	}
}
