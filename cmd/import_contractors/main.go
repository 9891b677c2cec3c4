package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/database"
	"github.com/renovalte/renovalte/internal/env"
	"github.com/renovalte/renovalte/internal/model"
	"github.com/renovalte/renovalte/internal/repository"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

// main imports contractor directory rows from a CSV export. Rows are matched by
// name, so re-running the import updates existing contractors instead of
// duplicating them.
func main() {
	csvPath := flag.String("csv", "contractors.csv", "path to the contractor CSV export")
	flag.Parse()

	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		logger.Panic(err)
	}
	defer file.Close()

	repo := repository.NewRepository(db, logger, nil)
	ctx := context.Background()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		logger.Panicf("Failed to read CSV header: %v", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		logger.Panic("CSV is missing the required 'name' column")
	}

	var created, updated, skipped int
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Errorf("Line %d: %v", line, err)
			skipped++
			continue
		}

		get := func(column string) string {
			i, ok := columns[column]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		name := get("name")
		if name == "" {
			skipped++
			continue
		}

		contractor := &model.Contractor{
			Name:            name,
			Address:         get("address"),
			City:            get("city"),
			PostalCode:      get("postal_code"),
			State:           get("state"),
			Phone:           get("phone"),
			Website:         get("website"),
			Email:           get("email"),
			PriceRange:      get("price_range"),
			ServiceArea:     get("service_area"),
			BusinessSize:    get("business_size"),
			YearsInBusiness: parseIntPtr(get("years_in_business")),
			Services:        get("services"),
			Description:     get("description"),
			Specializations: get("specializations"),
			Rating:          parseFloatPtr(get("rating")),
			ReviewsCount:    parseInt(get("reviews_count")),
			Certifications:  get("certifications"),
			KfwEligible:     parseBool(get("kfw_eligible")),
			Source:          get("source"),
			AdditionalInfo:  get("additional_info"),
		}

		projectTypes := constant.ParseProjectTypes(get("project_types"))
		for _, pt := range projectTypes {
			if !pt.IsValid() {
				logger.Warnf("Line %d (%s): unknown project type %q", line, name, pt)
			}
		}

		wasCreated, err := repo.Contractor.UpsertByName(ctx, nil, contractor, projectTypes)
		if err != nil {
			logger.Errorf("Line %d (%s): %v", line, name, err)
			skipped++
			continue
		}
		if wasCreated {
			created++
		} else {
			updated++
		}
	}

	logger.Infof("Import finished: %d created, %d updated, %d skipped", created, updated, skipped)
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &n
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &f
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		return false
	}

	return b
}
