// Package importer reads listing catalogs from CSV files.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"listing-api/internal/models"
)

// Columns is the expected CSV header.
var Columns = []string{"title", "content", "price", "latitude", "longitude", "images"}

const imageSeparator = "|"

// ParseCSV reads listings from r. The first row is a header and is skipped.
// Images are separated by '|'.
func ParseCSV(r io.Reader) ([]models.ListingItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var items []models.ListingItem
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		item, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func parseRecord(record []string) (models.ListingItem, error) {
	if len(record) < 5 {
		return models.ListingItem{}, fmt.Errorf("invalid record length: %d, expected at least 5 columns", len(record))
	}

	price, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return models.ListingItem{}, fmt.Errorf("invalid price: %s", record[2])
	}
	if price < 0 {
		return models.ListingItem{}, fmt.Errorf("negative price: %d", price)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return models.ListingItem{}, fmt.Errorf("invalid latitude: %s", record[3])
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return models.ListingItem{}, fmt.Errorf("invalid longitude: %s", record[4])
	}

	images := []string{}
	if len(record) > 5 {
		for _, img := range strings.Split(record[5], imageSeparator) {
			if img = strings.TrimSpace(img); img != "" {
				images = append(images, img)
			}
		}
	}

	return models.ListingItem{
		Title:      record[0],
		Content:    record[1],
		Price:      price,
		Coordinate: models.Coordinate{Latitude: lat, Longitude: lon},
		Images:     images,
	}, nil
}
