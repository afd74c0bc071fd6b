package sso

import (
	"fmt"
	"os"
	"strings"
)

// EnvCCacheName is the standard MIT variable locating the credential
// cache.
const EnvCCacheName = "KRB5CCNAME"

// ccache residency types we cannot read as plain files.
var unsupportedCCacheTypes = []string{"DIR", "KEYRING", "MEMORY", "API", "MSLSA", "KCM"}

// CCachePath resolves the credential cache location the way MIT tools
// do: an explicit path wins, then KRB5CCNAME (FILE: prefix optional),
// then the conventional /tmp/krb5cc_<uid>.
func CCachePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if env := os.Getenv(EnvCCacheName); env != "" {
		if rest, ok := strings.CutPrefix(env, "FILE:"); ok {
			return rest, nil
		}
		for _, typ := range unsupportedCCacheTypes {
			if strings.HasPrefix(env, typ+":") {
				return "", fmt.Errorf("credential cache %q: only FILE caches are readable", env)
			}
		}
		// No recognized type prefix: a bare path.
		return env, nil
	}

	return fmt.Sprintf("/tmp/krb5cc_%d", os.Getuid()), nil
}
