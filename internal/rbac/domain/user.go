package domain

import "time"

type User struct {
	ID        int64
	Name      string  // globally unique; referenced by Role.AssignedUsers as a plain string
	Role      *string // role name, not a foreign key (nullable)
	Email     *string
	Phone     *string
	Branch    *string
	CreatedAt time.Time
}
