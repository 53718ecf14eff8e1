package dto

// StatsResponse agregados del dashboard del tenant.
// LowStock y OutOfStock son excluyentes: un ítem en cero solo cuenta en OutOfStock.
type StatsResponse struct {
	TotalItems    int `json:"total_items"`
	TotalUnits    int `json:"total_units"`
	LowStock      int `json:"low_stock"`
	OutOfStock    int `json:"out_of_stock"`
	ActiveMembers int `json:"active_members"`
	ActivityToday int `json:"activity_today"`
}
