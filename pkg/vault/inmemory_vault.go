package vault

import "sync"

type InMemoryVault struct {
	lock    sync.RWMutex
	records map[string][]byte
}

func NewInMemoryVault() *InMemoryVault {
	return &InMemoryVault{
		records: make(map[string][]byte),
	}
}

func (v *InMemoryVault) Store(id string, record []byte) error {
	v.lock.Lock()
	defer v.lock.Unlock()

	v.records[id] = record
	return nil
}

func (v *InMemoryVault) Load(id string) ([]byte, error) {
	v.lock.RLock()
	defer v.lock.RUnlock()

	record, ok := v.records[id]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return record, nil
}

func (v *InMemoryVault) Delete(id string) error {
	v.lock.Lock()
	defer v.lock.Unlock()

	delete(v.records, id)
	return nil
}

func (v *InMemoryVault) IDs() []string {
	v.lock.RLock()
	defer v.lock.RUnlock()

	ids := make([]string, 0, len(v.records))
	for id := range v.records {
		ids = append(ids, id)
	}
	return ids
}
