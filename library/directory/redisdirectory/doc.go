// Package redisdirectory reads members and sections from Redis.
//
// A member is a hash at library:member:<id> with the fields role and name.
// A section is a hash at library:section:<id> with the field class_teacher,
// its members are the set library:section:<id>:members.
package redisdirectory
