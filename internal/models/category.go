package models

import "strings"

// CategoryAll is the search sentinel matching every category.
const CategoryAll = "all"

type Category struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Icon        string `json:"icon" bson:"icon"`
	Description string `json:"description" bson:"description"`
}

// DefaultCategories returns the marketplace category catalogue.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat-dev-tools", Name: "Developer Tools", Icon: "🛠️", Description: "Tools for coding, debugging, and deployment."},
		{ID: "cat-fin-ops", Name: "Financial Operations", Icon: "💰", Description: "Automate financial workflows and reporting."},
		{ID: "cat-collaboration", Name: "Collaboration", Icon: "🤝", Description: "Enhance team communication and project management."},
		{ID: "cat-design", Name: "Design & UI", Icon: "🎨", Description: "Integrate design tools and assets."},
		{ID: "cat-reporting", Name: "Reporting & Analytics", Icon: "📊", Description: "Visualize data and generate reports."},
		{ID: "cat-security", Name: "Security & Compliance", Icon: "🔒", Description: "Ensure data security and regulatory compliance."},
		{ID: "cat-crm", Name: "CRM & Sales", Icon: "📈", Description: "Manage customer relations and sales pipelines."},
		{ID: "cat-marketing", Name: "Marketing", Icon: "📣", Description: "Automate marketing campaigns and customer engagement."},
		{ID: "cat-ai-ml", Name: "AI & Machine Learning", Icon: "🧠", Description: "Integrate AI models and machine learning workflows."},
		{ID: "cat-iot", Name: "IoT & Edge Computing", Icon: "📡", Description: "Connect and manage IoT devices and data streams."},
	}
}

// FindCategory looks a category up by name, ignoring case.
func FindCategory(categories []Category, name string) (Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}
