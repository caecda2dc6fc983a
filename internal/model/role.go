package model

// RoleAdmin is the single role in use. Every self-registered user is
// assigned it unconditionally; there is no lower-privilege role.
const RoleAdmin = "ADMIN"
