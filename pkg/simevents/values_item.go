package simevents

// itemAtLocation builds the decoder for variants that need an item and the
// place it was used, both read from one payload.
func itemAtLocation[V any](wrap func(ItemInfoImbued, LocationImbued) V) func(Payload) (V, error) {
	return func(p Payload) (V, error) {
		var zero V

		item, loc, err := decodeComposite(p, decodeItemInfo, decodeLocation)
		if err != nil {
			return zero, err
		}
		return wrap(item, loc), nil
	}
}

// itemOnly builds the decoder for variants that are exactly an item.
func itemOnly[V any](wrap func(ItemInfoImbued) V) func(Payload) (V, error) {
	return func(p Payload) (V, error) {
		return extend(p, decodeItemInfo, func(i ItemInfoImbued, _ *reader) V {
			return wrap(i)
		})
	}
}

type OnWeaponReloadEventValue struct {
	Item     ItemInfoImbued
	Location LocationImbued
}

func (OnWeaponReloadEventValue) VariantName() string { return "OnWeaponReloadEventValue" }
func (OnWeaponReloadEventValue) simEventValue() {}

type ItemPickedUpEventValue struct {
	Item     ItemInfoImbued
	Location LocationImbued
}

func (ItemPickedUpEventValue) VariantName() string { return "ItemPickedUpEventValue" }
func (ItemPickedUpEventValue) simEventValue() {}

type ItemDroppedEventValue struct {
	Item     ItemInfoImbued
	Location LocationImbued
}

func (ItemDroppedEventValue) VariantName() string { return "ItemDroppedEventValue" }
func (ItemDroppedEventValue) simEventValue() {}

type ItemThrownEventValue struct {
	Item     ItemInfoImbued
	Location LocationImbued
}

func (ItemThrownEventValue) VariantName() string { return "ItemThrownEventValue" }
func (ItemThrownEventValue) simEventValue() {}

type FirstMissedShotEventValue struct {
	Item     ItemInfoImbued
	Location LocationImbued
}

func (FirstMissedShotEventValue) VariantName() string { return "FirstMissedShotEventValue" }
func (FirstMissedShotEventValue) simEventValue() {}

type FirstNonHeadshotEventValue struct {
	Item     ItemInfoImbued
	Location LocationImbued
}

func (FirstNonHeadshotEventValue) VariantName() string { return "FirstNonHeadshotEventValue" }
func (FirstNonHeadshotEventValue) simEventValue() {}

type ItemRemovedFromInventoryEventValue struct {
	ItemInfoImbued
}

func (ItemRemovedFromInventoryEventValue) VariantName() string {
	return "ItemRemovedFromInventoryEventValue"
}
func (ItemRemovedFromInventoryEventValue) simEventValue() {}

type ItemDestroyedEventValue struct {
	ItemInfoImbued
}

func (ItemDestroyedEventValue) VariantName() string { return "ItemDestroyedEventValue" }
func (ItemDestroyedEventValue) simEventValue() {}

type HoldingIllegalWeaponEventValue struct {
	ItemInfoImbued
}

func (HoldingIllegalWeaponEventValue) VariantName() string { return "HoldingIllegalWeaponEventValue" }
func (HoldingIllegalWeaponEventValue) simEventValue() {}
