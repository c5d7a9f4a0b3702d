package models

// MenuItem is a static catalog entry. The menu is not persisted; it is the
// source of truth for unit prices at add-to-cart time.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

var menuItems = []MenuItem{
	{
		ID:          "chicken",
		Name:        "Chicken",
		Price:       800.0,
		Description: "Fresh chicken pickle per KG",
	},
	{
		ID:          "chicken_boneless",
		Name:        "Chicken Boneless",
		Price:       1000.0,
		Description: "Boneless chicken pickle per KG",
	},
	{
		ID:          "prawns_small",
		Name:        "Prawns Small Size",
		Price:       1200.0,
		Description: "Small size prawn pickle per KG",
	},
	{
		ID:          "prawns_big",
		Name:        "Prawns Big Size",
		Price:       1400.0,
		Description: "Big size prawn pickle per KG",
	},
	{
		ID:          "mutton",
		Name:        "Mutton",
		Price:       1500.0,
		Description: "Fresh mutton pickle per KG",
	},
}

// Menu returns the fixed catalog.
func Menu() []MenuItem {
	return menuItems
}

// MenuItemByID looks up a catalog entry by its fixed id.
func MenuItemByID(id string) (MenuItem, bool) {
	for _, item := range menuItems {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}
