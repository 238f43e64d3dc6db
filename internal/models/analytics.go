package models

type AnalyticsPeriod string

const (
	PeriodDaily   AnalyticsPeriod = "daily"
	PeriodWeekly  AnalyticsPeriod = "weekly"
	PeriodMonthly AnalyticsPeriod = "monthly"
)

// AnalyticsPoint is one bucket of the series. Date is YYYY-MM-DD.
type AnalyticsPoint struct {
	Date        string   `json:"date" bson:"date"`
	Installs    int      `json:"installs" bson:"installs"`
	Uninstalls  int      `json:"uninstalls" bson:"uninstalls"`
	ActiveUsers int      `json:"active_users" bson:"active_users"`
	Revenue     *float64 `json:"revenue,omitempty" bson:"revenue,omitempty"`
	Errors      *int     `json:"errors,omitempty" bson:"errors,omitempty"`
}

// ExtensionAnalytics is read-only reporting data.
type ExtensionAnalytics struct {
	ExtensionID string           `json:"extension_id" bson:"extension_id"`
	Period      AnalyticsPeriod  `json:"period" bson:"period"`
	Data        []AnalyticsPoint `json:"data" bson:"data"`
}

func (a ExtensionAnalytics) Clone() ExtensionAnalytics {
	c := a
	if a.Data != nil {
		c.Data = make([]AnalyticsPoint, len(a.Data))
		for i, p := range a.Data {
			if p.Revenue != nil {
				v := *p.Revenue
				p.Revenue = &v
			}
			if p.Errors != nil {
				v := *p.Errors
				p.Errors = &v
			}
			c.Data[i] = p
		}
	}
	return c
}
