package models

// Stats is the website statistics response. Only TotalProperties is
// computed; the remaining values are fixed business figures.
type Stats struct {
	TotalProperties int64 `json:"total_properties"`
	TotalSales      int   `json:"total_sales"`
	TotalClients    int   `json:"total_clients"`
	YearsExperience int   `json:"years_experience"`
}
