package character

import (
	"strings"
)

// RechargeType says when a feature's uses come back
type RechargeType string

const (
	RechargeShortRest RechargeType = "short_rest"
	RechargeLongRest  RechargeType = "long_rest"
	RechargeDawn      RechargeType = "dawn"
)

type FeatureUses struct {
	Current  int          `json:"current"`
	Maximum  int          `json:"maximum"`
	Recharge RechargeType `json:"recharge"`
}

// Feature is a class or racial feature, optionally with limited uses
type Feature struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Source      string       `json:"source,omitempty"`
	Uses        *FeatureUses `json:"uses,omitempty"`
}

type Features []Feature

// Find does a case-insensitive lookup by name
func (f Features) Find(name string) *Feature {
	for i := range f {
		if strings.EqualFold(f[i].Name, name) {
			return &f[i]
		}
	}
	return nil
}

// Restore refills uses. A long rest refills everything.
func (f Features) Restore(long bool) {
	for i := range f {
		uses := f[i].Uses
		if uses == nil {
			continue
		}
		if long || uses.Recharge == RechargeShortRest {
			uses.Current = uses.Maximum
		}
	}
}

func (f Features) Clone() Features {
	if f == nil {
		return nil
	}
	out := make(Features, len(f))
	for i, feat := range f {
		if feat.Uses != nil {
			uses := *feat.Uses
			feat.Uses = &uses
		}
		out[i] = feat
	}
	return out
}
