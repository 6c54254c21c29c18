package save

import "time"

// CurrentVersion is written into every new document. Older documents without
// a version decode as version 0 and load with the same rules.
const CurrentVersion = 1

// Document is the persisted snapshot of a whole world.
// Every section is optional on decode; missing ones load as empty.
type Document struct {
	Version              int               `json:"version"`
	SaveID               string            `json:"saveId,omitempty"`
	Timestamp            time.Time         `json:"timestamp"`
	Credits              float64           `json:"credits"`
	CurrentLocationID    string            `json:"currentLocationId"`
	Resources            []ResourceEntry   `json:"resources"`
	Fleet                FleetData         `json:"fleet"`
	Research             ResearchData      `json:"research"`
	Locations            []LocationData    `json:"locations"`
	LogisticsAllocations []AllocationEntry `json:"logisticsAllocations"`
	Workshop             WorkshopData      `json:"workshop"`
	Civilization         CivilizationData  `json:"civilization"`
}

type ResourceEntry struct {
	Type        string  `json:"type"`
	Quantity    int     `json:"quantity"`
	MarketValue float64 `json:"marketValue,omitempty"`
}

type StockEntry struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type FleetData struct {
	Level        int     `json:"level"`
	RepairStatus float64 `json:"repairStatus"`
}

type ResearchData struct {
	Researchers     int      `json:"researchers"`
	ResearchPoints  float64  `json:"researchPoints"`
	UnlockedTechIDs []string `json:"unlockedTechIds"`
}

type LocationData struct {
	ID                string       `json:"id"`
	Unlocked          bool         `json:"unlocked"`
	State             string       `json:"state"`
	MiningLevel       int          `json:"miningLevel"`
	LogisticsLevel    int          `json:"logisticsLevel"`
	StationLevel      int          `json:"stationLevel"`
	ProcessingLevel   int          `json:"processingLevel,omitempty"`
	ActiveRecipeID    string       `json:"activeRecipeId,omitempty"`
	InstalledMachines []StockEntry `json:"installedMachines"`
	Stockpile         []StockEntry `json:"stockpile"`
}

type AllocationEntry struct {
	Type       string  `json:"type"`
	Percentage float64 `json:"percentage"`
}

type WorkshopData struct {
	SmelterCount   int        `json:"smelterCount"`
	AssemblerCount int        `json:"assemblerCount"`
	Slots          []SlotData `json:"slots"`
}

type SlotData struct {
	Index          int     `json:"index"`
	Machine        string  `json:"machine"`
	ActiveRecipeID string  `json:"activeRecipeId,omitempty"`
	Progress       float64 `json:"progress"`
	Working        bool    `json:"working"`
	Automated      bool    `json:"automated"`
}

type CivilizationData struct {
	Level              int      `json:"level"`
	Nanites            float64  `json:"nanites"`
	UnlockedUpgradeIDs []string `json:"unlockedUpgradeIds"`
}
