package domain

// ModalState is the open/closed state of the tier-creation modal.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

// RequestModal returns the state for a request that asks for the tier
// form. The form only opens in edit mode; anything else leaves it closed.
func RequestModal(requested, editing bool) ModalState {
	if requested && editing {
		return ModalOpen
	}
	return ModalClosed
}

func (s ModalState) IsOpen() bool { return s == ModalOpen }
