package api

type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type Plane struct {
	ID         int    `json:"id"`
	TailNumber string `json:"tail_number"`
	Model      string `json:"model"`
	CreatedAt  string `json:"created_at"`
}

type PlanePart struct {
	ID              int     `json:"id"`
	PlaneID         int     `json:"plane_id"`
	PartName        string  `json:"part_name"`
	SerialNumber    string  `json:"serial_number"`
	Category        string  `json:"category"`
	UsageHours      float64 `json:"usage_hours"`
	UsageLimitHours float64 `json:"usage_limit_hours"`
	UsagePercent    float64 `json:"usage_percent"`
	InstalledAt     string  `json:"installed_at"`
}

type PlaneWithParts struct {
	Plane Plane       `json:"plane"`
	Parts []PlanePart `json:"parts"`
}

type CreatePlaneRequest struct {
	TailNumber string `json:"tail_number"`
	Model      string `json:"model"`
}

type UpdatePlaneRequest struct {
	TailNumber *string `json:"tail_number,omitempty"`
	Model      *string `json:"model,omitempty"`
}

type CreatePartRequest struct {
	PartName        string  `json:"part_name"`
	SerialNumber    string  `json:"serial_number"`
	Category        string  `json:"category"`
	UsageHours      float64 `json:"usage_hours"`
	UsageLimitHours float64 `json:"usage_limit_hours"`
}

type UpdatePartRequest struct {
	PartName        *string  `json:"part_name,omitempty"`
	SerialNumber    *string  `json:"serial_number,omitempty"`
	Category        *string  `json:"category,omitempty"`
	UsageHours      *float64 `json:"usage_hours,omitempty"`
	UsageLimitHours *float64 `json:"usage_limit_hours,omitempty"`
}
