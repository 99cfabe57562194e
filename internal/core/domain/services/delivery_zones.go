package services

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Zone is a distance bucket for delivery tax surcharges.
type Zone int

const (
	// ZoneUnknown represents an invalid or undefined zone.
	ZoneUnknown Zone = iota

	// ZoneShort adds no surcharge to the restaurant's base tax.
	ZoneShort

	// ZoneMedium adds a fixed surcharge.
	ZoneMedium

	// ZoneLong adds a larger fixed surcharge.
	ZoneLong
)

func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		ZoneUnknown: "UNKNOWN",
		ZoneShort:   "SHORT",
		ZoneMedium:  "MEDIUM",
		ZoneLong:    "LONG",
	}
}

// Validate checks if the Zone value is one of the defined zones.
func (z Zone) Validate() error {
	if _, ok := getZoneStrings()[z]; !ok || z == ZoneUnknown {
		return errs.NewValueIsInvalidErrorWithCause("zone",
			fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// String returns the wire name of the zone, e.g. "MEDIUM".
func (z Zone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return "UNKNOWN"
}

// DeliveryZoneTable maps postal-code prefixes to distance zones and holds
// the per-zone surcharges. The real-world zone boundaries are deployment
// configuration, not logic: the table is built from config data and
// DefaultDeliveryZoneTable only provides a fallback.
type DeliveryZoneTable struct {
	zones      map[string]Zone
	surcharges map[Zone]kernel.Money
}

// NewDeliveryZoneTable builds a zone table from prefix-to-zone mappings
// and per-zone surcharges. Every mapped zone must be valid and every
// surcharge non-negative; zones without a surcharge entry default to zero.
func NewDeliveryZoneTable(zones map[string]Zone, surcharges map[Zone]kernel.Money) (DeliveryZoneTable, error) {
	if len(zones) == 0 {
		return DeliveryZoneTable{}, errs.NewValueIsRequiredError("zones")
	}

	zoneCopy := make(map[string]Zone, len(zones))
	for prefix, zone := range zones {
		if len(prefix) != kernel.PrefixLength {
			return DeliveryZoneTable{}, errs.NewValueIsInvalidErrorWithCause("zones",
				fmt.Errorf("prefix %q is not %d digits", prefix, kernel.PrefixLength))
		}
		if err := zone.Validate(); err != nil {
			return DeliveryZoneTable{}, err
		}
		zoneCopy[prefix] = zone
	}

	surchargeCopy := make(map[Zone]kernel.Money, len(surcharges))
	for zone, surcharge := range surcharges {
		if err := zone.Validate(); err != nil {
			return DeliveryZoneTable{}, err
		}
		if surcharge.IsNegative() {
			return DeliveryZoneTable{}, errs.NewValueIsInvalidError("surcharge")
		}
		surchargeCopy[zone] = surcharge
	}

	return DeliveryZoneTable{zones: zoneCopy, surcharges: surchargeCopy}, nil
}

// DefaultDeliveryZoneTable returns the fallback table used when the
// deployment provides no zone configuration: central Sao Paulo prefixes
// with the standard surcharges (SHORT +0.00, MEDIUM +5.00, LONG +10.00).
func DefaultDeliveryZoneTable() DeliveryZoneTable {
	table, err := NewDeliveryZoneTable(
		map[string]Zone{
			"010": ZoneShort,
			"011": ZoneShort,
			"013": ZoneShort,
			"014": ZoneMedium,
			"015": ZoneMedium,
			"045": ZoneMedium,
			"020": ZoneLong,
			"040": ZoneLong,
			"050": ZoneLong,
		},
		map[Zone]kernel.Money{
			ZoneShort:  kernel.ZeroMoney(),
			ZoneMedium: kernel.MustNewMoney("5.00"),
			ZoneLong:   kernel.MustNewMoney("10.00"),
		},
	)
	if err != nil {
		panic(fmt.Sprintf("default delivery zone table is invalid: %v", err))
	}
	return table
}

// ZoneFor resolves the zone for a postal code.
// A well-formed CEP whose prefix matches no zone is outside the delivery
// area: a business rule violation, not a validation error.
func (t DeliveryZoneTable) ZoneFor(cep kernel.CEP) (Zone, error) {
	if err := cep.Validate(); err != nil {
		return ZoneUnknown, err
	}
	zone, ok := t.zones[cep.Prefix()]
	if !ok {
		return ZoneUnknown, errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"CEP %s is out of delivery area", cep))
	}
	return zone, nil
}

// Surcharge returns the fixed surcharge for a zone; zones without an
// entry cost nothing extra.
func (t DeliveryZoneTable) Surcharge(zone Zone) kernel.Money {
	if surcharge, ok := t.surcharges[zone]; ok {
		return surcharge
	}
	return kernel.ZeroMoney()
}

// DeliveryTax computes base tax plus the zone surcharge for the postal
// code, rounded to two fractional digits.
func (t DeliveryZoneTable) DeliveryTax(baseTax kernel.Money, cep kernel.CEP) (kernel.Money, error) {
	if err := baseTax.Validate(); err != nil {
		return kernel.Money{}, err
	}
	zone, err := t.ZoneFor(cep)
	if err != nil {
		return kernel.Money{}, err
	}
	return baseTax.Add(t.Surcharge(zone)).Round2(), nil
}
