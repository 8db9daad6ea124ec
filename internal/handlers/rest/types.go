package rest

type defenseRequest struct {
	Type    string `json:"type"`
	Defense string `json:"defense"`
}

type createOrUpdateRequest struct {
	HitPoints int              `json:"hitPoints"`
	Defenses  []defenseRequest `json:"defenses"`
}

type damageRequest struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

type dealDamageRequest struct {
	Damage []damageRequest `json:"damage"`
}

type amountRequest struct {
	Amount int `json:"amount"`
}

type errorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
