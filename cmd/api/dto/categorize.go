package dto

// CategorizeRequestDTO 는 초안 태깅 요청 본문이다. 저장된 문서를 참조하지 않는다.
type CategorizeRequestDTO struct {
	Title       string   `json:"title" example:"Moonlit Forest"`
	Description string   `json:"description" example:"A serene night scene"`
	Content     string   `json:"content" example:"a moonlit forest with fireflies, digital painting"`
	ImageURLs   []string `json:"image_urls"`
}

// CategorizeResponseDTO 는 태깅 결과다. Categories 는 항상 1~3개다.
type CategorizeResponseDTO struct {
	Categories []string `json:"categories" example:"Fantasy Landscape,Digital Painting"`
}

// BatchCategorizeResponseDTO 는 배치 실행 집계 결과다.
type BatchCategorizeResponseDTO struct {
	Message   string   `json:"message" example:"batch categorization finished"`
	Processed int      `json:"processed" example:"42"`
	Total     int      `json:"total" example:"50"`
	Errors    []string `json:"errors,omitempty"`
}
