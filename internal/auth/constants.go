// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package auth

import "time"

// AccessTokenTTL is the lifetime of an issued access token. There is no
// refresh flow; clients re-authenticate when the token expires.
const AccessTokenTTL = 1 * time.Hour
