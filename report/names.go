package report

import (
	"os/user"
	"strconv"
)

// Names resolves numeric owner and group ids to names. Lookups are memoized
// for the lifetime of the value. The zero value is ready to use.
type Names struct {
	users  map[int]string
	groups map[int]string

	// lookup functions, replaceable in tests
	lookupUser  func(id string) (string, error)
	lookupGroup func(id string) (string, error)
}

func (n *Names) User(uid int) string {
	if n.users == nil {
		n.users = make(map[int]string)
	}
	return resolve(n.users, uid, n.userLookup())
}

func (n *Names) Group(gid int) string {
	if n.groups == nil {
		n.groups = make(map[int]string)
	}
	return resolve(n.groups, gid, n.groupLookup())
}

func (n *Names) userLookup() func(string) (string, error) {
	if n.lookupUser != nil {
		return n.lookupUser
	}
	return func(id string) (string, error) {
		u, err := user.LookupId(id)
		if err != nil {
			return "", err
		}
		return u.Username, nil
	}
}

func (n *Names) groupLookup() func(string) (string, error) {
	if n.lookupGroup != nil {
		return n.lookupGroup
	}
	return func(id string) (string, error) {
		g, err := user.LookupGroupId(id)
		if err != nil {
			return "", err
		}
		return g.Name, nil
	}
}

// resolve returns "" for unknown ids.
func resolve(cache map[int]string, id int, lookup func(string) (string, error)) string {
	if id < 0 {
		return ""
	}
	if name, found := cache[id]; found {
		return name
	}
	name, err := lookup(strconv.Itoa(id))
	if err != nil {
		name = ""
	}
	cache[id] = name
	return name
}
