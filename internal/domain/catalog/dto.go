package catalog

type CreateServiceInput struct {
	NameAr                  string  `json:"nameAr" binding:"required"`
	NameEn                  string  `json:"nameEn" binding:"required"`
	DescAr                  *string `json:"descAr"`
	DescEn                  *string `json:"descEn"`
	Price                   float64 `json:"price" binding:"required,gt=0"`
	ExpectedDurationMinutes *int    `json:"expectedDurationMinutes"`
	SpecializationID        *string `json:"specializationId"`
}

type UpdateServiceInput struct {
	NameAr                  *string  `json:"nameAr"`
	NameEn                  *string  `json:"nameEn"`
	DescAr                  *string  `json:"descAr"`
	DescEn                  *string  `json:"descEn"`
	Price                   *float64 `json:"price" binding:"omitempty,gt=0"`
	ExpectedDurationMinutes *int     `json:"expectedDurationMinutes"`
	SpecializationID        *string  `json:"specializationId"`
	IsActive                *bool    `json:"isActive"`
}

type CreateSparePartInput struct {
	NameAr    string  `json:"nameAr" binding:"required"`
	NameEn    string  `json:"nameEn" binding:"required"`
	PartCode  *string `json:"partCode"`
	UnitPrice float64 `json:"unitPrice" binding:"required,gt=0"`
}

type UpdateSparePartInput struct {
	NameAr    *string  `json:"nameAr"`
	NameEn    *string  `json:"nameEn"`
	PartCode  *string  `json:"partCode"`
	UnitPrice *float64 `json:"unitPrice" binding:"omitempty,gt=0"`
	IsActive  *bool    `json:"isActive"`
}

type CreateSpecializationInput struct {
	Code   string `json:"code" binding:"required"`
	NameAr string `json:"nameAr" binding:"required"`
	NameEn string `json:"nameEn" binding:"required"`
}

type UpdateSpecializationInput struct {
	Code   *string `json:"code"`
	NameAr *string `json:"nameAr"`
	NameEn *string `json:"nameEn"`
}
