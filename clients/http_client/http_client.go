package http_client

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"valuationbackend/types"
	"valuationbackend/utils/helpers"
)

// FetchIndustryBenchmarks pulls sector benchmark figures from the
// configured benchmark page. The page is expected to carry one
// .benchmark-row block per metric; missing or unreachable pages are
// reported to the caller, which keeps a static fallback.
func FetchIndustryBenchmarks(industry string) (types.IndustryBenchmark, error) {
	benchmark := types.IndustryBenchmark{Industry: industry}

	baseURL := os.Getenv("BENCHMARK_URL")
	if baseURL == "" {
		return benchmark, fmt.Errorf("BENCHMARK_URL not configured")
	}

	params := url.Values{}
	params.Add("industry", industry)

	req, err := http.NewRequest("GET", baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return benchmark, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return benchmark, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return benchmark, fmt.Errorf("benchmark page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return benchmark, fmt.Errorf("failed to parse the benchmark page: %v", err)
	}

	doc.Find("div.benchmark-row").Each(func(index int, item *goquery.Selection) {
		key := helpers.NormalizeString(item.Find("span.name").Text())
		value := strings.TrimSpace(item.Find("span.value").Text())

		switch key {
		case "ebitda margin":
			benchmark.AvgEbitdaMargin = toPercent(value)
		case "revenue growth":
			benchmark.AvgRevenueGrowth = toPercent(value)
		}
	})

	doc.Find("div.key-metrics ul li").Each(func(index int, item *goquery.Selection) {
		metric := strings.TrimSpace(item.Text())
		if metric != "" {
			benchmark.KeyMetrics = append(benchmark.KeyMetrics, metric)
		}
	})

	doc.Find("div.trends ul li").Each(func(index int, item *goquery.Selection) {
		trend := strings.TrimSpace(item.Text())
		if trend != "" {
			benchmark.Trends = append(benchmark.Trends, trend)
		}
	})

	if benchmark.AvgEbitdaMargin == 0 && len(benchmark.KeyMetrics) == 0 {
		return benchmark, fmt.Errorf("no benchmark data found for industry %q", industry)
	}
	return benchmark, nil
}

// toPercent reads a figure like "12%" or "12" as the percent number 12.
func toPercent(value string) float64 {
	f := helpers.ToFloat(value)
	if strings.Contains(value, "%") {
		f *= 100
	}
	return f
}
