package contract

// IUUIDGenerator issues new entity identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
