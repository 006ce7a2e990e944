package employee

type PlantResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PlantEmployeeResponse is one row of a plant staff listing
type PlantEmployeeResponse struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	PlantName    string `json:"plant_name"`
}

func NewPlantEmployeeResponse(e Employee) PlantEmployeeResponse {
	resp := PlantEmployeeResponse{EmployeeID: e.ID, EmployeeName: e.Name}
	if e.PlantName != nil {
		resp.PlantName = *e.PlantName
	}
	return resp
}
