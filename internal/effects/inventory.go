package effects

import (
	"github.com/shopspring/decimal"
)

const (
	KindItemAdded      Kind = "ItemAdded"
	KindItemRemoved    Kind = "ItemRemoved"
	KindItemEquipped   Kind = "ItemEquipped"
	KindItemUnequipped Kind = "ItemUnequipped"
	KindItemUsed       Kind = "ItemUsed"
	KindGoldChanged    Kind = "GoldChanged"
	KindSilverChanged  Kind = "SilverChanged"
	KindACChanged      Kind = "ACChanged"
)

// ItemAdded is looked up in the catalog when applied. The optional fields
// describe the item when the catalog does not know it.
type ItemAdded struct {
	sealed
	ItemName    string           `json:"item_name"`
	Quantity    int              `json:"quantity"`
	NewTotal    int              `json:"new_total"`
	ItemType    string           `json:"item_type,omitempty"`
	Description string           `json:"description,omitempty"`
	Magical     bool             `json:"magical,omitempty"`
	Weight      *float64         `json:"weight,omitempty"`
	ValueGP     *decimal.Decimal `json:"value_gp,omitempty"`
}

type ItemRemoved struct {
	sealed
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	Remaining int    `json:"remaining"`
}

type ItemEquipped struct {
	sealed
	ItemName string `json:"item_name"`
	Slot     string `json:"slot"`
}

type ItemUnequipped struct {
	sealed
	ItemName string `json:"item_name"`
	Slot     string `json:"slot"`
}

type ItemUsed struct {
	sealed
	ItemName string `json:"item_name"`
	Result   string `json:"result"`
}

type GoldChanged struct {
	sealed
	Amount   int    `json:"amount"`
	NewTotal int    `json:"new_total"`
	Reason   string `json:"reason"`
}

type SilverChanged struct {
	sealed
	Amount   int    `json:"amount"`
	NewTotal int    `json:"new_total"`
	Reason   string `json:"reason"`
}

// ACChanged is informational; AC is always derived from equipment
type ACChanged struct {
	sealed
	NewAC  int    `json:"new_ac"`
	Source string `json:"source"`
}

func (ItemAdded) Kind() Kind      { return KindItemAdded }
func (ItemRemoved) Kind() Kind    { return KindItemRemoved }
func (ItemEquipped) Kind() Kind   { return KindItemEquipped }
func (ItemUnequipped) Kind() Kind { return KindItemUnequipped }
func (ItemUsed) Kind() Kind       { return KindItemUsed }
func (GoldChanged) Kind() Kind    { return KindGoldChanged }
func (SilverChanged) Kind() Kind  { return KindSilverChanged }
func (ACChanged) Kind() Kind      { return KindACChanged }

func init() {
	register[ItemAdded]()
	register[ItemRemoved]()
	register[ItemEquipped]()
	register[ItemUnequipped]()
	register[ItemUsed]()
	register[GoldChanged]()
	register[SilverChanged]()
	register[ACChanged]()
}
