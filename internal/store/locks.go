package store

import "sync"

// ownerLocks serializes mutating operations per owner. Item mutations span
// multiple statements (duplicate check then INSERT, read-validate then
// UPDATE), so without the lock two concurrent partial updates can overwrite
// each other. Reads take no lock: every mutation commits as a single
// statement, so a concurrent search sees the store before or after it,
// never mid-way.
var ownerLocks sync.Map

// lockOwner acquires the mutation lock for one owner and returns the
// release function.
func lockOwner(ownerID int64) func() {
	mu, _ := ownerLocks.LoadOrStore(ownerID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
