package services

import (
	"fmt"
	"sort"
	"strings"

	"weather-atlas/models"
	"weather-atlas/utils"
)

// SummaryService builds and prints the survey report over a collected
// dataset, including the per-hemisphere regression table.
type SummaryService struct {
	logger *utils.Logger
}

func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

func (s *SummaryService) Generate(records []*models.CityWeatherRecord) *models.SurveyReport {
	report := &models.SurveyReport{
		CountryCounts: make(map[string]int),
		Fits:          make(map[string]models.RegressionResult),
	}

	if len(records) == 0 {
		return report
	}

	report.TotalCities = len(records)

	north, south := SplitByHemisphere(records)
	report.NorthernCount = len(north)
	report.SouthernCount = len(south)

	report.MinTemp = records[0].MaxTemp
	report.MaxTemp = records[0].MaxTemp
	var total float64
	for _, r := range records {
		total += r.MaxTemp
		if r.MaxTemp < report.MinTemp {
			report.MinTemp = r.MaxTemp
		}
		if r.MaxTemp > report.MaxTemp {
			report.MaxTemp = r.MaxTemp
		}
		if r.Country != "" {
			report.CountryCounts[r.Country]++
		}
	}
	report.AvgTemp = round2(total / float64(len(records)))

	for hemi, group := range map[string][]*models.CityWeatherRecord{"north": north, "south": south} {
		for _, v := range Variables {
			res, err := Fit(group, v)
			if err != nil {
				s.logger.Warn("[summary] %s/%s: %v — skipping", hemi, v, err)
				continue
			}
			report.Fits[hemi+"/"+string(v)] = res
		}
	}

	return report
}

func (s *SummaryService) Print(r *models.SurveyReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🌍 CITY WEATHER SURVEY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Cities collected    : \033[1m%d\033[0m\n", r.TotalCities)
	fmt.Printf("  Northern hemisphere : \033[1m%d\033[0m\n", r.NorthernCount)
	fmt.Printf("  Southern hemisphere : \033[1m%d\033[0m\n", r.SouthernCount)
	fmt.Println()

	fmt.Printf("\033[1;33m  Max Temperature (°C)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.TotalCities > 0 {
		fmt.Printf("  Average : \033[1;32m%.2f\033[0m\n", r.AvgTemp)
		fmt.Printf("  Minimum : \033[1;32m%.2f\033[0m\n", r.MinTemp)
		fmt.Printf("  Maximum : \033[1;32m%.2f\033[0m\n", r.MaxTemp)
	} else {
		fmt.Printf("  No temperature data available\n")
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Regressions vs. Latitude\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.Fits) == 0 {
		fmt.Printf("  No regressions computed\n")
	} else {
		keys := make([]string, 0, len(r.Fits))
		for k := range r.Fits {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			res := r.Fits[k]
			fmt.Printf("  %-18s %-22s R² = \033[1;32m%.4f\033[0m (n=%d)\n",
				k, Equation(res), res.R2, res.N)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
