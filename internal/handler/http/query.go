package http

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/storefront-gateway/models"
)

// queryInt parses key as an int. Missing or malformed values give 0, which
// the services replace with their defaults.
func queryInt(q url.Values, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(q.Get(key)))
	if err != nil {
		return 0
	}
	return n
}

func productAdminQuery(q url.Values) models.ProductAdminQuery {
	return models.ProductAdminQuery{
		Search:     q.Get("q"),
		CategoryID: q.Get("categoryId"),
		Status:     q.Get("status"),
		Page:       queryInt(q, "page"),
		Size:       queryInt(q, "size"),
	}
}

func brandAdminQuery(q url.Values) models.BrandAdminQuery {
	return models.BrandAdminQuery{
		IncludeInactive: q.Get("includeInactive"),
		Search:          q.Get("search"),
		Page:            queryInt(q, "page"),
		Limit:           queryInt(q, "limit"),
	}
}

func categoryQuery(q url.Values) models.CategoryQuery {
	return models.CategoryQuery{
		IncludeInactive: q.Get("includeInactive"),
		Parent:          q.Get("parent"),
	}
}

func orderListQuery(q url.Values) models.OrderListQuery {
	return models.OrderListQuery{
		Page: queryInt(q, "page"),
		Size: queryInt(q, "size"),
	}
}
