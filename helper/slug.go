package helper

import (
	"fmt"

	"github.com/gosimple/slug"

	"event_ticketing/inventory"
)

func GenerateUniqueEventSlug(store inventory.EventStore, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		taken, err := store.EventSlugTaken(result)
		if err != nil || !taken {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
