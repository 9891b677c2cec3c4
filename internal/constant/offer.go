package constant

// OfferStatus tracks one contractor's bid opportunity for one project.
//
// pending --submit--> submitted --> accepted | rejected
//
// There is no transition back to pending. The upload token on an offer is
// non-null only while the offer is pending and awaiting an upload; it is
// cleared in the same update that marks the offer submitted.
type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "pending"
	OfferStatusSubmitted OfferStatus = "submitted"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusRejected  OfferStatus = "rejected"
)
