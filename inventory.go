package docinventory

import "strings"

// Inventory accumulates the controller names, sensor identifiers and MCU
// identifiers harvested from one platform's documentation.
type Inventory struct {
	controllers Set
	sensors     Set
	mcus        Set
	keywords    Keywords
}

// NewInventory returns an empty Inventory that filters controller
// candidates with kw.
func NewInventory(kw Keywords) *Inventory {
	return &Inventory{
		controllers: NewSet(),
		sensors:     NewSet(),
		mcus:        NewSet(),
		keywords:    kw,
	}
}

// Update folds one document's findings into the inventory.
// Controller candidates are normalized and dropped when empty, when they
// start with '-', when they are a bad heading or when they contain non-ASCII
// characters. Sensor and MCU identifiers are normalized and added as-is.
func (inv *Inventory) Update(names []string, sensors, mcus Set) {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		cleaned := Normalize(name)
		if cleaned == "" || strings.HasPrefix(cleaned, "-") {
			continue
		}
		if inv.keywords.IsBadHeading(cleaned) || !isASCII(cleaned) {
			continue
		}
		inv.controllers.Add(cleaned)
	}
	for id := range sensors {
		if id = Normalize(id); id != "" {
			inv.sensors.Add(id)
		}
	}
	for id := range mcus {
		if id = Normalize(id); id != "" {
			inv.mcus.Add(id)
		}
	}
}

// Finalize returns the sorted contents of the inventory.
// It does not modify the inventory.
func (inv *Inventory) Finalize() Catalog {
	return Catalog{
		Controllers: inv.controllers.Sorted(),
		Sensors:     inv.sensors.Sorted(),
		MCUs:        inv.mcus.Sorted(),
	}
}

// Catalog is the finalized, sorted form of an Inventory.
type Catalog struct {
	Controllers []string `json:"controllers"`
	Sensors     []string `json:"sensors"`
	MCUs        []string `json:"mcus"`
}

// Category names in output order.
const (
	CategoryControllers = "controllers"
	CategorySensors     = "sensors"
	CategoryMCUs        = "mcus"
)

// Categories returns the catalog's sequences paired with their category
// names, in output order.
func (c Catalog) Categories() []Category {
	return []Category{
		{Name: CategoryControllers, Items: c.Controllers},
		{Name: CategorySensors, Items: c.Sensors},
		{Name: CategoryMCUs, Items: c.MCUs},
	}
}

// Category is one named sequence of a Catalog.
type Category struct {
	Name  string
	Items []string
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
