package constant

const (
	// Laptop categories derived from specs at ingest time.
	LaptopCategoryGaming  = "Gaming"
	LaptopCategoryStudent = "Student"
	LaptopCategoryOffice  = "Office"

	// A laptop under this price without a dedicated GPU counts as Student.
	StudentPriceThreshold = 8_000_000

	// A dedicated GPU at or above this size counts as gaming hardware.
	GamingGPUThreshold = 4.0

	// DefaultTopN is how many ranked laptops a recommendation returns.
	DefaultTopN = 5

	// Imputation floors for spec columns that must stay positive so cost
	// and benefit normalization remain finite.
	SpecValueFloor = 0.1
)
