package cache

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// KeySeparator delimits cache key segments.
const KeySeparator = "::"

// Namespace prefixes every key written by this cache so a shared backend
// (Redis) can hold other data without collisions.
const Namespace = "drug"

// Cached read operations. These are part of the key, so renaming one
// silently orphans its entries; keep them stable.
const (
	OpGetByID    = "get"
	OpStatistics = "stats"
	OpSearch     = "search"
)

// Key builds a cache key from the tenant id, the operation name and the
// normalized arguments. The tenant id is always the first segment after
// the namespace; omitting it would let one tenant read another tenant's
// cached results.
func Key(tenantID uuid.UUID, operation string, args ...any) string {
	parts := []string{Namespace, tenantID.String(), operation}
	for _, arg := range args {
		parts = append(parts, serializeValue(arg))
	}
	return strings.Join(parts, KeySeparator)
}

// TenantPrefix returns the prefix covering every cached entry of one tenant.
func TenantPrefix(tenantID uuid.UUID) string {
	return Namespace + KeySeparator + tenantID.String() + KeySeparator
}

// serializeValue renders one argument deterministically. Pointers are
// dereferenced (nil renders as "nil" so a missing criterion and a set one
// never collide), times use RFC3339, maps sort their keys.
func serializeValue(v any) string {
	if v == nil {
		return "nil"
	}

	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case uuid.UUID:
		return t.String()
	case string:
		return t
	}

	rv := reflect.ValueOf(v)
	rt := reflect.TypeOf(v)

	switch rt.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return "nil"
		}
		return serializeValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = serializeValue(rv.Index(i).Interface())
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ","))
	case reflect.Map:
		keys := rv.MapKeys()
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%s",
				serializeValue(k.Interface()),
				serializeValue(rv.MapIndex(k).Interface())))
		}
		sort.Strings(pairs)
		return fmt.Sprintf("{%s}", strings.Join(pairs, ","))
	case reflect.Struct:
		parts := make([]string, 0, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s:%s", field.Name, serializeValue(rv.Field(i).Interface())))
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ","))
	}

	return fmt.Sprintf("%v", v)
}
