package meetingv1

import (
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

type User struct {
	Id       string
	Username string
	Email    string
	Role     string
}

func (m *User) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Username)
	b = appendString(b, 3, m.Email)
	return appendString(b, 4, m.Role)
}

func (m *User) UnmarshalWire(b []byte) error {
	*m = User{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Username)
		case 3:
			return consumeString(typ, b, &m.Email)
		case 4:
			return consumeString(typ, b, &m.Role)
		}
		return 0, nil
	})
}

type Meeting struct {
	Id           string
	Title        string
	Description  string
	Date         string
	StartTime    string
	EndTime      string
	Participants []string
	CreatedBy    string
	Status       string
	Seq          int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (m *Meeting) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Title)
	b = appendString(b, 3, m.Description)
	b = appendString(b, 4, m.Date)
	b = appendString(b, 5, m.StartTime)
	b = appendString(b, 6, m.EndTime)
	b = appendStrings(b, 7, m.Participants)
	b = appendString(b, 8, m.CreatedBy)
	b = appendString(b, 9, m.Status)
	b = appendVarint(b, 10, uint64(m.Seq))
	b = appendTime(b, 11, m.CreatedAt)
	return appendTime(b, 12, m.UpdatedAt)
}

func (m *Meeting) UnmarshalWire(b []byte) error {
	*m = Meeting{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Title)
		case 3:
			return consumeString(typ, b, &m.Description)
		case 4:
			return consumeString(typ, b, &m.Date)
		case 5:
			return consumeString(typ, b, &m.StartTime)
		case 6:
			return consumeString(typ, b, &m.EndTime)
		case 7:
			return consumeStrings(typ, b, &m.Participants)
		case 8:
			return consumeString(typ, b, &m.CreatedBy)
		case 9:
			return consumeString(typ, b, &m.Status)
		case 10:
			var v uint64
			n, err := consumeVarint(typ, b, &v)
			m.Seq = int64(v)
			return n, err
		case 11:
			return consumeTime(typ, b, &m.CreatedAt)
		case 12:
			return consumeTime(typ, b, &m.UpdatedAt)
		}
		return 0, nil
	})
}

type MeetingDraft struct {
	Title        string
	Description  string
	Date         string
	StartTime    string
	EndTime      string
	Participants []string
	Status       string
}

func (m *MeetingDraft) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Title)
	b = appendString(b, 2, m.Description)
	b = appendString(b, 3, m.Date)
	b = appendString(b, 4, m.StartTime)
	b = appendString(b, 5, m.EndTime)
	b = appendStrings(b, 6, m.Participants)
	return appendString(b, 7, m.Status)
}

func (m *MeetingDraft) UnmarshalWire(b []byte) error {
	*m = MeetingDraft{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Title)
		case 2:
			return consumeString(typ, b, &m.Description)
		case 3:
			return consumeString(typ, b, &m.Date)
		case 4:
			return consumeString(typ, b, &m.StartTime)
		case 5:
			return consumeString(typ, b, &m.EndTime)
		case 6:
			return consumeStrings(typ, b, &m.Participants)
		case 7:
			return consumeString(typ, b, &m.Status)
		}
		return 0, nil
	})
}

type FieldError struct {
	Field   string
	Message string
}

func (m *FieldError) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Field)
	return appendString(b, 2, m.Message)
}

func (m *FieldError) UnmarshalWire(b []byte) error {
	*m = FieldError{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Field)
		case 2:
			return consumeString(typ, b, &m.Message)
		}
		return 0, nil
	})
}

// ----- auth -----

type LoginRequest struct {
	Email    string
	Password string
}

func (m *LoginRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Email)
	return appendString(b, 2, m.Password)
}

func (m *LoginRequest) UnmarshalWire(b []byte) error {
	*m = LoginRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Email)
		case 2:
			return consumeString(typ, b, &m.Password)
		}
		return 0, nil
	})
}

type LoginResponse struct {
	Token string
	User  *User
}

func (m *LoginResponse) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Token)
	if m.User != nil {
		b = appendMessage(b, 2, m.User)
	}
	return b
}

func (m *LoginResponse) UnmarshalWire(b []byte) error {
	*m = LoginResponse{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Token)
		case 2:
			m.User = new(User)
			return consumeMessage(typ, b, m.User)
		}
		return 0, nil
	})
}

type LogoutRequest struct{}

func (m *LogoutRequest) AppendWire(b []byte) []byte { return b }
func (m *LogoutRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type LogoutResponse struct{}

func (m *LogoutResponse) AppendWire(b []byte) []byte { return b }
func (m *LogoutResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type GetSessionRequest struct{}

func (m *GetSessionRequest) AppendWire(b []byte) []byte { return b }
func (m *GetSessionRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type GetSessionResponse struct {
	Authenticated bool
	User          *User
}

func (m *GetSessionResponse) AppendWire(b []byte) []byte {
	b = appendBool(b, 1, m.Authenticated)
	if m.User != nil {
		b = appendMessage(b, 2, m.User)
	}
	return b
}

func (m *GetSessionResponse) UnmarshalWire(b []byte) error {
	*m = GetSessionResponse{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeBool(typ, b, &m.Authenticated)
		case 2:
			m.User = new(User)
			return consumeMessage(typ, b, m.User)
		}
		return 0, nil
	})
}

// ----- meetings -----

type ListMeetingsRequest struct {
	Search   string
	Status   string
	DateFrom string
	DateTo   string
	SortBy   string
}

func (m *ListMeetingsRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Search)
	b = appendString(b, 2, m.Status)
	b = appendString(b, 3, m.DateFrom)
	b = appendString(b, 4, m.DateTo)
	return appendString(b, 5, m.SortBy)
}

func (m *ListMeetingsRequest) UnmarshalWire(b []byte) error {
	*m = ListMeetingsRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Search)
		case 2:
			return consumeString(typ, b, &m.Status)
		case 3:
			return consumeString(typ, b, &m.DateFrom)
		case 4:
			return consumeString(typ, b, &m.DateTo)
		case 5:
			return consumeString(typ, b, &m.SortBy)
		}
		return 0, nil
	})
}

type ListMeetingsResponse struct {
	Meetings []*Meeting
	Total    int32
	Empty    string
}

func (m *ListMeetingsResponse) AppendWire(b []byte) []byte {
	for _, mt := range m.Meetings {
		b = appendMessage(b, 1, mt)
	}
	b = appendVarint(b, 2, uint64(m.Total))
	return appendString(b, 3, m.Empty)
}

func (m *ListMeetingsResponse) UnmarshalWire(b []byte) error {
	*m = ListMeetingsResponse{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			mt := new(Meeting)
			n, err := consumeMessage(typ, b, mt)
			if n > 0 && err == nil {
				m.Meetings = append(m.Meetings, mt)
			}
			return n, err
		case 2:
			var v uint64
			n, err := consumeVarint(typ, b, &v)
			m.Total = int32(v)
			return n, err
		case 3:
			return consumeString(typ, b, &m.Empty)
		}
		return 0, nil
	})
}

type GetMeetingRequest struct {
	Id string
}

func (m *GetMeetingRequest) AppendWire(b []byte) []byte { return appendString(b, 1, m.Id) }

func (m *GetMeetingRequest) UnmarshalWire(b []byte) error {
	*m = GetMeetingRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Id)
		}
		return 0, nil
	})
}

// MeetingResponse is the shape shared by Get, Create and Update responses.
type MeetingResponse struct {
	Meeting *Meeting
}

func (m *MeetingResponse) AppendWire(b []byte) []byte {
	if m.Meeting != nil {
		b = appendMessage(b, 1, m.Meeting)
	}
	return b
}

func (m *MeetingResponse) UnmarshalWire(b []byte) error {
	*m = MeetingResponse{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			m.Meeting = new(Meeting)
			return consumeMessage(typ, b, m.Meeting)
		}
		return 0, nil
	})
}

type (
	GetMeetingResponse    = MeetingResponse
	CreateMeetingResponse = MeetingResponse
	UpdateMeetingResponse = MeetingResponse
)

type CreateMeetingRequest struct {
	Draft *MeetingDraft
}

func (m *CreateMeetingRequest) AppendWire(b []byte) []byte {
	if m.Draft != nil {
		b = appendMessage(b, 1, m.Draft)
	}
	return b
}

func (m *CreateMeetingRequest) UnmarshalWire(b []byte) error {
	*m = CreateMeetingRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			m.Draft = new(MeetingDraft)
			return consumeMessage(typ, b, m.Draft)
		}
		return 0, nil
	})
}

type UpdateMeetingRequest struct {
	Id    string
	Draft *MeetingDraft
}

func (m *UpdateMeetingRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	if m.Draft != nil {
		b = appendMessage(b, 2, m.Draft)
	}
	return b
}

func (m *UpdateMeetingRequest) UnmarshalWire(b []byte) error {
	*m = UpdateMeetingRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Id)
		case 2:
			m.Draft = new(MeetingDraft)
			return consumeMessage(typ, b, m.Draft)
		}
		return 0, nil
	})
}

type DeleteMeetingRequest struct {
	Id string
}

func (m *DeleteMeetingRequest) AppendWire(b []byte) []byte { return appendString(b, 1, m.Id) }

func (m *DeleteMeetingRequest) UnmarshalWire(b []byte) error {
	*m = DeleteMeetingRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Id)
		}
		return 0, nil
	})
}

type DeleteMeetingResponse struct{}

func (m *DeleteMeetingResponse) AppendWire(b []byte) []byte { return b }
func (m *DeleteMeetingResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type ValidateDraftRequest struct {
	Draft *MeetingDraft
}

func (m *ValidateDraftRequest) AppendWire(b []byte) []byte {
	if m.Draft != nil {
		b = appendMessage(b, 1, m.Draft)
	}
	return b
}

func (m *ValidateDraftRequest) UnmarshalWire(b []byte) error {
	*m = ValidateDraftRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			m.Draft = new(MeetingDraft)
			return consumeMessage(typ, b, m.Draft)
		}
		return 0, nil
	})
}

type ValidateDraftResponse struct {
	Valid  bool
	Errors []*FieldError
}

func (m *ValidateDraftResponse) AppendWire(b []byte) []byte {
	b = appendBool(b, 1, m.Valid)
	for _, e := range m.Errors {
		b = appendMessage(b, 2, e)
	}
	return b
}

func (m *ValidateDraftResponse) UnmarshalWire(b []byte) error {
	*m = ValidateDraftResponse{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeBool(typ, b, &m.Valid)
		case 2:
			e := new(FieldError)
			n, err := consumeMessage(typ, b, e)
			if n > 0 && err == nil {
				m.Errors = append(m.Errors, e)
			}
			return n, err
		}
		return 0, nil
	})
}
