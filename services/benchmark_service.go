package services

import (
	"go.uber.org/zap"

	"valuationbackend/clients/http_client"
	"valuationbackend/types"
	"valuationbackend/utils/helpers"
)

type BenchmarkServiceI interface {
	Context(industry string) types.IndustryBenchmark
}

type benchmarkService struct{}

var BenchmarkService BenchmarkServiceI = &benchmarkService{}

// Static sector context used whenever the benchmark page is not
// configured or does not know the industry.
var staticBenchmarks = map[string]types.IndustryBenchmark{
	"technology": {
		Industry:         "Technology",
		AvgEbitdaMargin:  15,
		AvgRevenueGrowth: 20,
		KeyMetrics:       []string{"R&D investment", "user acquisition cost", "churn rate"},
		Trends:           []string{"AI/ML adoption", "cloud migration", "cybersecurity focus"},
	},
	"manufacturing": {
		Industry:         "Manufacturing",
		AvgEbitdaMargin:  12,
		AvgRevenueGrowth: 5,
		KeyMetrics:       []string{"production efficiency", "supply chain optimization", "quality control"},
		Trends:           []string{"Industry 4.0", "sustainability", "automation"},
	},
	"healthcare": {
		Industry:         "Healthcare",
		AvgEbitdaMargin:  18,
		AvgRevenueGrowth: 8,
		KeyMetrics:       []string{"patient outcomes", "regulatory compliance", "cost per patient"},
		Trends:           []string{"telemedicine", "AI diagnostics", "personalized medicine"},
	},
	"retail": {
		Industry:         "Retail",
		AvgEbitdaMargin:  8,
		AvgRevenueGrowth: 3,
		KeyMetrics:       []string{"inventory turnover", "customer acquisition", "same-store sales"},
		Trends:           []string{"e-commerce growth", "omnichannel", "sustainability"},
	},
	"financial services": {
		Industry:         "Financial Services",
		AvgEbitdaMargin:  25,
		AvgRevenueGrowth: 6,
		KeyMetrics:       []string{"net interest margin", "loan loss provisions", "capital adequacy"},
		Trends:           []string{"fintech disruption", "digital banking", "regulatory changes"},
	},
}

var defaultBenchmark = types.IndustryBenchmark{
	Industry:         "General",
	AvgEbitdaMargin:  10,
	AvgRevenueGrowth: 5,
	KeyMetrics:       []string{"operational efficiency", "market share", "customer satisfaction"},
	Trends:           []string{"digital transformation", "sustainability", "innovation"},
}

// Context resolves sector context for an industry name. The live
// benchmark page takes precedence; every failure degrades silently to
// the static table.
func (b *benchmarkService) Context(industry string) types.IndustryBenchmark {
	benchmark, err := http_client.FetchIndustryBenchmarks(industry)
	if err == nil {
		return benchmark
	}
	zap.L().Debug("Benchmark fetch unavailable, using static context",
		zap.String("industry", industry), zap.Error(err))

	if static, ok := staticBenchmarks[helpers.NormalizeString(industry)]; ok {
		return static
	}
	return defaultBenchmark
}
