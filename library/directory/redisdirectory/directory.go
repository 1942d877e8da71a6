package redisdirectory

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	keyPrefix = "library:"

	fieldRole         = "role"
	fieldName         = "name"
	fieldClassTeacher = "class_teacher"

	pingTimeout = 5 * time.Second
)

var (
	ErrConnectingFailed     = errors.New("connecting to redis failed")
	ErrReadingMemberFailed  = errors.New("reading member from redis failed")
	ErrReadingSectionFailed = errors.New("reading section from redis failed")
	ErrWritingFailed        = errors.New("writing directory entries to redis failed")
)

// Options are the connection settings of the directory.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Directory looks up members and sections in Redis.
type Directory struct {
	client *redis.Client
}

// Connect opens a client and verifies it with a PING.
func Connect(ctx context.Context, options Options) (*Directory, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         options.Addr,
		Password:     options.Password,
		DB:           options.DB,
		DialTimeout:  pingTimeout,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Join(ErrConnectingFailed, err)
	}

	return New(client), nil
}

// New wraps an existing client.
func New(client *redis.Client) *Directory {
	return &Directory{client: client}
}

func (d *Directory) Close() error {
	return d.client.Close()
}

// Member returns the zero core.Member if the key does not exist.
func (d *Directory) Member(ctx context.Context, memberID core.MemberIDString) (core.Member, error) {
	if memberID == "" {
		return core.Member{}, nil
	}

	fields, err := d.client.HGetAll(ctx, memberKey(memberID)).Result()
	if err != nil {
		return core.Member{}, errors.Join(ErrReadingMemberFailed, err)
	}

	if len(fields) == 0 {
		return core.Member{}, nil
	}

	return core.Member{
		ID:   memberID,
		Role: core.MemberRole(fields[fieldRole]),
		Name: fields[fieldName],
	}, nil
}

// Section returns the zero core.Section if the key does not exist.
func (d *Directory) Section(ctx context.Context, sectionID core.SectionIDString) (core.Section, error) {
	if sectionID == "" {
		return core.Section{}, nil
	}

	pipe := d.client.Pipeline()
	fieldsCmd := pipe.HGetAll(ctx, sectionKey(sectionID))
	membersCmd := pipe.SMembers(ctx, sectionMembersKey(sectionID))

	if _, err := pipe.Exec(ctx); err != nil {
		return core.Section{}, errors.Join(ErrReadingSectionFailed, err)
	}

	fields := fieldsCmd.Val()
	if len(fields) == 0 {
		return core.Section{}, nil
	}

	return core.Section{
		ID:             sectionID,
		ClassTeacherID: fields[fieldClassTeacher],
		MemberIDs:      membersCmd.Val(),
	}, nil
}

// Put writes members and sections in one MULTI/EXEC transaction.
// The member set of each given section is replaced.
func (d *Directory) Put(ctx context.Context, members []core.Member, sections []core.Section) error {
	_, err := d.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, m := range members {
			pipe.HSet(ctx, memberKey(m.ID), fieldRole, string(m.Role), fieldName, m.Name)
		}

		for _, s := range sections {
			pipe.HSet(ctx, sectionKey(s.ID), fieldClassTeacher, s.ClassTeacherID)
			pipe.Del(ctx, sectionMembersKey(s.ID))

			if len(s.MemberIDs) > 0 {
				ids := make([]any, 0, len(s.MemberIDs))
				for _, id := range s.MemberIDs {
					ids = append(ids, id)
				}

				pipe.SAdd(ctx, sectionMembersKey(s.ID), ids...)
			}
		}

		return nil
	})

	if err != nil {
		return errors.Join(ErrWritingFailed, err)
	}

	return nil
}

func memberKey(id core.MemberIDString) string {
	return keyPrefix + "member:" + id
}

func sectionKey(id core.SectionIDString) string {
	return keyPrefix + "section:" + id
}

func sectionMembersKey(id core.SectionIDString) string {
	return sectionKey(id) + ":members"
}
