package kingdom

// Building ids referenced by base actions.
const (
	Infirmary   = "infirmary"
	Chapel      = "chapel"
	Foundry     = "foundry"
	GuildHall   = "guild_hall"
	Watchtowers = "watchtowers"
)

// Building unlocks options at the base rather than raw power.
type Building struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Built        bool   `json:"built"`
	Level        int    `json:"level"`
	CostGold     int    `json:"cost_gold"`
	CostSupplies int    `json:"cost_supplies"`
}

// StarterBuildings lists every building; only the guild hall stands at the start.
func StarterBuildings() []Building {
	return []Building{
		{ID: Infirmary, Name: "Infirmary", Description: "Heal injuries. Unlocks 'Heal' action.", CostGold: 50, CostSupplies: 20},
		{ID: Chapel, Name: "Chapel", Description: "Reduce stress. Unlocks 'Tavern/Prayer' action.", CostGold: 50, CostSupplies: 10},
		{ID: Foundry, Name: "Foundry", Description: "Upgrade cards and gear via crafting.", CostGold: 100, CostSupplies: 50},
		{ID: GuildHall, Name: "Guild Hall", Description: "Recruit specialists and better adventurers.", Built: true, Level: 1, CostGold: 150, CostSupplies: 50},
		{ID: Watchtowers, Name: "Watchtowers", Description: "Safer routes, but stronger enemies attracted.", CostGold: 80, CostSupplies: 40},
	}
}
