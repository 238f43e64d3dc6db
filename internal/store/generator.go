package store

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"go-marketplace/internal/models"
	"go-marketplace/pkg/utils"
)

const (
	// DemoUserID owns the pre-installed demo extension.
	DemoUserID = "user-current"
	// DemoDeveloperID publishes the fixed demo extensions.
	DemoDeveloperID = "dev-demobank"

	day = 24 * time.Hour
)

var demoDescriptions = []string{
	"Seamlessly integrate your workflow with our advanced API services.",
	"Boost your productivity with automated tasks and smart notifications.",
	"Gain deeper insights into your financial data with comprehensive reporting.",
	"Streamline your customer support operations by linking customer queries.",
	"Enhance your team's collaboration with shared dashboards.",
	"Secure your transactions with enterprise-grade encryption.",
	"Personalize your customer engagement strategies using powerful CRM integrations.",
	"Automate your marketing campaigns with data-driven insights.",
	"Leverage AI and machine learning to predict market trends.",
	"Connect your IoT devices to our platform for real-time data streaming.",
}

var demoPublishers = []string{"Demo Bank", "Atlassian", "Slack", "Figma", "Google", "Microsoft", "AWS", "Stripe", "Twilio", "Zapier"}

var demoActions = []models.AuditAction{
	models.AuditActionInstall,
	models.AuditActionUninstall,
	models.AuditActionConfig,
	models.AuditActionReview,
	models.AuditActionPublish,
}

// Generator produces a demo marketplace dataset. The same seed and clock
// always yield the same dataset.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

func NewGenerator(seed uint64, now time.Time) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), now: now.UTC()}
}

// Generate returns two fixed extensions followed by count generated ones,
// with reviews, one pre-installed extension, developer projections,
// analytics and historical audit entries.
func (g *Generator) Generate(count int) Dataset {
	var d Dataset
	d.Extensions = append(g.fixedExtensions(), g.extensions(count)...)

	for i := range d.Extensions {
		ext := &d.Extensions[i]
		reviews := g.reviews(ext.ID)
		d.Reviews = append(d.Reviews, reviews...)
		ext.Rating = models.AverageRating(reviews)
	}

	d.Installed = []models.InstalledExtension{{
		ID:               "inst-vscode",
		ExtensionID:      "ext-vscode",
		UserID:           DemoUserID,
		InstallationDate: time.Date(2023, 1, 15, 10, 0, 0, 0, time.UTC),
		Enabled:          true,
		Configuration:    models.ConfigMap{"theme": models.String("dark"), "autoUpdate": models.Bool(true)},
	}}

	for _, ext := range d.Extensions {
		if ext.DeveloperInfo.ID != DemoDeveloperID && g.rng.Float64() <= 0.95 {
			continue
		}
		reviewsCount := 0
		for _, r := range d.Reviews {
			if r.ExtensionID == ext.ID {
				reviewsCount++
			}
		}
		statuses := []models.PublishStatus{models.PublishStatusPublished, models.PublishStatusDraft, models.PublishStatusPendingReview}
		dev := models.DeveloperExtension{
			ID:                 ext.ID,
			Name:               ext.Name,
			Status:             statuses[g.rng.IntN(len(statuses))],
			Version:            ext.Version,
			LastPublished:      ext.LastUpdated,
			TotalInstalls:      ext.InstallCount,
			ReviewsCount:       reviewsCount,
			AverageRating:      ext.Rating,
			MonetizationStatus: models.MonetizationFor(ext),
			PendingUpdates:     g.rng.Float64() > 0.7,
		}
		d.Developer = append(d.Developer, dev)
		d.Analytics = append(d.Analytics, g.analytics(dev))
	}

	d.AuditLogs = g.auditLogs(d.Extensions, 50)
	return d
}

func (g *Generator) fixedExtensions() []models.Extension {
	return []models.Extension{
		{
			ID: "ext-vscode", Name: "Demo Bank for VS Code", Publisher: "Demo Bank",
			Description: "Manage your API resources and test webhooks directly from your editor.",
			Icon:        "VS", Recommended: true, Category: "Developer Tools",
			Tags: []string{"IDE", "APIs", "Webhooks"}, InstallCount: 120000, Price: 0,
			LastUpdated: time.Date(2023, 10, 26, 10, 0, 0, 0, time.UTC), Version: "1.5.2",
			Screenshots:      []string{"https://picsum.photos/600/400?random=101", "https://picsum.photos/600/400?random=102"},
			DocumentationURL: "https://docs.demobank.com/vscode", PrivacyPolicyURL: "https://demobank.com/privacy",
			DeveloperInfo: models.DeveloperInfo{ID: DemoDeveloperID, Name: "Demo Bank Team", ContactEmail: "dev@demobank.com", Website: "https://demobank.com"},
			Changelog: []models.VersionLog{{
				Version: "1.5.2", ReleaseDate: time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC),
				Changes: []string{"Bug fixes", "Performance improvements"},
			}},
		},
		{
			ID: "ext-jira", Name: "Jira Integration", Publisher: "Atlassian",
			Description: "Create and link Demo Bank transactions to Jira issues automatically.",
			Icon:        "JI", Category: "Collaboration",
			Tags: []string{"Project Management", "Ticketing"}, InstallCount: 85000, Price: 0,
			LastUpdated: time.Date(2023, 9, 15, 10, 0, 0, 0, time.UTC), Version: "2.1.0",
			Screenshots:      []string{"https://picsum.photos/600/400?random=103", "https://picsum.photos/600/400?random=104"},
			DocumentationURL: "https://docs.atlassian.com/jira-demobank", PrivacyPolicyURL: "https://atlassian.com/privacy",
			DeveloperInfo: models.DeveloperInfo{ID: "dev-atlassian", Name: "Atlassian", ContactEmail: "support@atlassian.com"},
			PricingPlans: []models.PricingPlan{{
				ID: "jira-pro", Name: "Pro Plan", Description: "Advanced linking and automation",
				PriceMonthly: 15, PriceAnnually: 150, Features: []string{"Unlimited automations", "Custom fields mapping"},
			}},
		},
	}
}

func (g *Generator) extensions(count int) []models.Extension {
	categories := models.DefaultCategories()
	out := make([]models.Extension, 0, count)
	for i := 0; i < count; i++ {
		id := "ext-" + g.randomID()
		publisher := demoPublishers[g.rng.IntN(len(demoPublishers))]
		category := categories[g.rng.IntN(len(categories))]
		domain := strings.ReplaceAll(utils.Slugify(publisher), "-", "")

		tags := make([]string, g.rng.IntN(3)+1)
		for t := range tags {
			tags[t] = "tag-" + g.randomID()[:5]
		}
		screenshots := make([]string, g.rng.IntN(3)+1)
		for s := range screenshots {
			screenshots[s] = fmt.Sprintf("https://picsum.photos/600/400?random=%d", s+i)
		}

		version := fmt.Sprintf("%d.%d.%d", g.rng.IntN(5), g.rng.IntN(10), g.rng.IntN(20))
		var price float64
		if g.rng.Float64() > 0.6 {
			price = round2(g.rng.Float64() * 100)
		}
		ext := models.Extension{
			ID:               id,
			Name:             fmt.Sprintf("%s %s %d", publisher, category.Name, i+1),
			Publisher:        publisher,
			Description:      demoDescriptions[g.rng.IntN(len(demoDescriptions))],
			Icon:             category.Icon,
			Recommended:      g.rng.Float64() > 0.7,
			Category:         category.Name,
			Tags:             tags,
			InstallCount:     g.rng.IntN(50000) + 100,
			Price:            price,
			LastUpdated:      g.now.Add(-time.Duration(g.rng.IntN(365)) * day),
			Version:          version,
			Screenshots:      screenshots,
			DocumentationURL: "https://example.com/docs/" + id,
			PrivacyPolicyURL: "https://example.com/privacy/" + id,
			DeveloperInfo: models.DeveloperInfo{
				ID:           "dev-" + g.randomID(),
				Name:         publisher + " Team",
				ContactEmail: "contact@" + domain + ".com",
				Website:      "https://" + domain + ".com",
			},
			Changelog: g.changelog(version),
		}
		if price > 0 {
			ext.PricingPlans = g.pricingPlans(id)
		}
		out = append(out, ext)
	}
	return out
}

func (g *Generator) pricingPlans(id string) []models.PricingPlan {
	if g.rng.Float64() <= 0.4 {
		return nil
	}
	return []models.PricingPlan{
		{
			ID: id + "-basic", Name: "Basic", Description: "Essential features for small teams.",
			PriceMonthly: 9.99, PriceAnnually: 99.99,
			Features: []string{"Core Integration", "500 API calls/month", "Standard Support"},
		},
		{
			ID: id + "-pro", Name: "Pro", Description: "Advanced features for growing businesses.",
			PriceMonthly: 29.99, PriceAnnually: 299.99,
			Features: []string{"All Basic Features", "Unlimited API calls", "Premium Support", "Custom Reports", "Multi-user Access"},
		},
	}
}

// changelog walks backwards from version, oldest entry first.
func (g *Generator) changelog(version string) []models.VersionLog {
	var major, minor, patch int
	fmt.Sscanf(version, "%d.%d.%d", &major, &minor, &patch)

	n := g.rng.IntN(5) + 1
	logs := make([]models.VersionLog, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			patch = max(0, patch-g.rng.IntN(5))
			if g.rng.Float64() > 0.8 {
				minor = max(0, minor-1)
			}
			if g.rng.Float64() > 0.95 {
				major = max(0, major-1)
			}
		}
		subject := "real-time updates"
		if g.rng.Float64() > 0.5 {
			subject = "large datasets"
		}
		bug := "data sync failed intermittently"
		if g.rng.Float64() > 0.5 {
			bug = "notifications were not sent"
		}
		offset := time.Duration(float64(i*30)+g.rng.Float64()*15) * day
		logs = append(logs, models.VersionLog{
			Version:     fmt.Sprintf("%d.%d.%d", major, minor, patch),
			ReleaseDate: g.now.Add(-offset),
			Changes: []string{
				"Improved performance for " + subject + ".",
				"Fixed a bug where " + bug + ".",
			},
		})
	}
	slices.Reverse(logs)
	return logs
}

func (g *Generator) reviews(extensionID string) []models.Review {
	n := g.rng.IntN(5) + 1
	out := make([]models.Review, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Review{
			ID:          g.randomID(),
			ExtensionID: extensionID,
			UserID:      "user-" + g.randomID(),
			UserName:    "User " + g.randomID()[:4],
			Rating:      round1(g.rng.Float64()*2 + 3),
			Comment:     demoDescriptions[g.rng.IntN(len(demoDescriptions))],
			Timestamp:   g.now.Add(-time.Duration(g.rng.IntN(365)) * day),
		})
	}
	return out
}

// analytics builds 30 daily points ending today, oldest first.
func (g *Generator) analytics(dev models.DeveloperExtension) models.ExtensionAnalytics {
	points := make([]models.AnalyticsPoint, 30)
	for i := 0; i < 30; i++ {
		errs := g.rng.IntN(5)
		p := models.AnalyticsPoint{
			Date:        g.now.Add(-time.Duration(i) * day).Format(time.DateOnly),
			Installs:    g.rng.IntN(100),
			Uninstalls:  g.rng.IntN(10),
			ActiveUsers: int(g.rng.Float64() * float64(dev.TotalInstalls) * 0.5),
			Errors:      &errs,
		}
		if dev.MonetizationStatus != models.MonetizationFree {
			rev := round2(g.rng.Float64() * 500)
			p.Revenue = &rev
		}
		points[29-i] = p
	}
	return models.ExtensionAnalytics{ExtensionID: dev.ID, Period: models.PeriodDaily, Data: points}
}

// auditLogs returns n historical entries, newest first.
func (g *Generator) auditLogs(exts []models.Extension, n int) []models.AuditLogEntry {
	if len(exts) == 0 {
		return nil
	}
	out := make([]models.AuditLogEntry, 0, n)
	for i := 0; i < n; i++ {
		ext := exts[g.rng.IntN(len(exts))]
		userID := "user-" + g.randomID()
		if g.rng.Float64() > 0.5 {
			userID = DemoUserID
		}
		out = append(out, models.AuditLogEntry{
			ID:          g.randomID(),
			Timestamp:   g.now.Add(-time.Duration(g.rng.IntN(30))*day - time.Duration(i)*time.Second),
			Action:      demoActions[g.rng.IntN(len(demoActions))],
			UserID:      userID,
			ExtensionID: ext.ID,
			Details:     models.ConfigMap{"extension_name": models.String(ext.Name)},
		})
	}
	sortNewestFirst(out)
	return out
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func (g *Generator) randomID() string {
	var b strings.Builder
	for i := 0; i < 13; i++ {
		b.WriteByte(idAlphabet[g.rng.IntN(len(idAlphabet))])
	}
	return b.String()
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
func round2(f float64) float64 { return math.Round(f*100) / 100 }

func sortNewestFirst(entries []models.AuditLogEntry) {
	slices.SortStableFunc(entries, func(a, b models.AuditLogEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}
