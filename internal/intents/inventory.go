package intents

import (
	"github.com/shopspring/decimal"
)

const (
	KindAddItem      Kind = "AddItem"
	KindRemoveItem   Kind = "RemoveItem"
	KindEquipItem    Kind = "EquipItem"
	KindUnequipItem  Kind = "UnequipItem"
	KindUseItem      Kind = "UseItem"
	KindAdjustGold   Kind = "AdjustGold"
	KindAdjustSilver Kind = "AdjustSilver"
)

// AddItem puts something in the player's pack. The optional fields describe
// items the catalog does not know.
type AddItem struct {
	sealed
	ItemName    string           `json:"item_name"`
	Quantity    int              `json:"quantity"`
	ItemType    string           `json:"item_type,omitempty"`
	Description string           `json:"description,omitempty"`
	Magical     bool             `json:"magical,omitempty"`
	Weight      *float64         `json:"weight,omitempty"`
	ValueGP     *decimal.Decimal `json:"value_gp,omitempty"`
}

type RemoveItem struct {
	sealed
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

type EquipItem struct {
	sealed
	ItemName string `json:"item_name"`
}

type UnequipItem struct {
	sealed
	Slot string `json:"slot"`
}

type UseItem struct {
	sealed
	ItemName string `json:"item_name"`
	TargetID string `json:"target_id,omitempty"`
}

type AdjustGold struct {
	sealed
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

type AdjustSilver struct {
	sealed
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

func (AddItem) Kind() Kind      { return KindAddItem }
func (RemoveItem) Kind() Kind   { return KindRemoveItem }
func (EquipItem) Kind() Kind    { return KindEquipItem }
func (UnequipItem) Kind() Kind  { return KindUnequipItem }
func (UseItem) Kind() Kind      { return KindUseItem }
func (AdjustGold) Kind() Kind   { return KindAdjustGold }
func (AdjustSilver) Kind() Kind { return KindAdjustSilver }

func init() {
	register[AddItem]()
	register[RemoveItem]()
	register[EquipItem]()
	register[UnequipItem]()
	register[UseItem]()
	register[AdjustGold]()
	register[AdjustSilver]()
}
