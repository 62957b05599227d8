package view

// Surface is the display the reconciler draws onto. Implementations own
// the element lifecycle; the reconciler only decides what changed.
//
// ReplaceCard and RemoveCard touch a single entry so scroll position and
// unrelated items stay undisturbed; SetCards and ShowEmpty rebuild the
// whole list.
type Surface interface {
	// SetCards replaces the whole displayed list, in order.
	SetCards(cards []PostCard)

	// ReplaceCard swaps the displayed element with the given id for a
	// freshly computed one.
	ReplaceCard(id string, card PostCard)

	// RemoveCard drops the displayed element with the given id.
	RemoveCard(id string)

	// ShowEmpty displays the distinct "no results" state.
	ShowEmpty()
}
