package domain

// Department codes follow ISO 3166-2:CO. These are the values the
// storefront offers in the checkout location selector and the matching
// keys against zone location sets.
const (
	DepartmentBogota    = "CO-DC"
	DepartmentAntioquia = "CO-ANT"
	DepartmentValle     = "CO-VAC"
)

// Department is a Colombian administrative region.
type Department struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Departments lists the 33 Colombian departments (32 + Bogotá D.C.)
// in alphabetical order by name.
var Departments = []Department{
	{Code: "CO-AMA", Name: "Amazonas"},
	{Code: "CO-ANT", Name: "Antioquia"},
	{Code: "CO-ARA", Name: "Arauca"},
	{Code: "CO-ATL", Name: "Atlántico"},
	{Code: "CO-DC", Name: "Bogotá D.C."},
	{Code: "CO-BOL", Name: "Bolívar"},
	{Code: "CO-BOY", Name: "Boyacá"},
	{Code: "CO-CAL", Name: "Caldas"},
	{Code: "CO-CAQ", Name: "Caquetá"},
	{Code: "CO-CAS", Name: "Casanare"},
	{Code: "CO-CAU", Name: "Cauca"},
	{Code: "CO-CES", Name: "Cesar"},
	{Code: "CO-CHO", Name: "Chocó"},
	{Code: "CO-COR", Name: "Córdoba"},
	{Code: "CO-CUN", Name: "Cundinamarca"},
	{Code: "CO-GUA", Name: "Guainía"},
	{Code: "CO-GUV", Name: "Guaviare"},
	{Code: "CO-HUI", Name: "Huila"},
	{Code: "CO-LAG", Name: "La Guajira"},
	{Code: "CO-MAG", Name: "Magdalena"},
	{Code: "CO-MET", Name: "Meta"},
	{Code: "CO-NAR", Name: "Nariño"},
	{Code: "CO-NSA", Name: "Norte de Santander"},
	{Code: "CO-PUT", Name: "Putumayo"},
	{Code: "CO-QUI", Name: "Quindío"},
	{Code: "CO-RIS", Name: "Risaralda"},
	{Code: "CO-SAP", Name: "San Andrés y Providencia"},
	{Code: "CO-SAN", Name: "Santander"},
	{Code: "CO-SUC", Name: "Sucre"},
	{Code: "CO-TOL", Name: "Tolima"},
	{Code: "CO-VAC", Name: "Valle del Cauca"},
	{Code: "CO-VAU", Name: "Vaupés"},
	{Code: "CO-VID", Name: "Vichada"},
}

// IsValidDepartment reports whether code is one of the known
// ISO 3166-2:CO department codes.
func IsValidDepartment(code string) bool {
	for _, d := range Departments {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Payment Methods (the storefront hands off to the gateway after order creation)
const (
	PaymentMethodGateway = "gateway" // hosted payment link
	PaymentMethodCOD     = "cod"     // contra entrega
)

var PaymentMethods = []string{
	PaymentMethodGateway,
	PaymentMethodCOD,
}

// Currency is the store's base currency. Amounts are integers: COP has
// no fractional subunits in this market.
const Currency = "COP"
