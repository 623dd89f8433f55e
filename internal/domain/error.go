package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int    `json:"code" example:"409"`
	Category string `json:"category" example:"CONFLICT"`
	Message  string `json:"message" example:"Conflito de estado: o SKU já está na lista de favoritos."`
}

// SkuInfo são os dados de exibição de um SKU, resolvidos no catálogo externo.
// O núcleo nunca persiste esses dados, apenas a referência SkuID.
type SkuInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Thumb string `json:"thumb,omitempty"`
}
