package db

import (
	"errors"
	"time"

	"github.com/fritter-app/fritter-backend/models"
)

// MockStore simulates the Postgres store for handler tests, including the
// unique indexes on barriers, edges, profiles and usernames.
type MockStore struct {
	Users        map[int]models.User
	Freets       map[int]models.Freet
	Barriers     map[string]models.FollowerBarrier
	Edges        map[int]models.Following
	Interactions map[int]models.Interaction
	Profiles     map[int]models.Profile
	Tokens       map[int][]string
	ShouldFail   bool // flag to simulate store failures

	nextID int
}

// NewMock initializes a new mock store.
func NewMock() *MockStore {
	return &MockStore{
		Users:        make(map[int]models.User),
		Freets:       make(map[int]models.Freet),
		Barriers:     make(map[string]models.FollowerBarrier),
		Edges:        make(map[int]models.Following),
		Interactions: make(map[int]models.Interaction),
		Profiles:     make(map[int]models.Profile),
		Tokens:       make(map[int][]string),
	}
}

var errMock = errors.New("mock: store failure")

func (m *MockStore) id() int {
	m.nextID++
	return m.nextID
}

// --- users ---

func (m *MockStore) CreateUser(username, passwordHash string) (models.User, error) {
	if m.ShouldFail {
		return models.User{}, errMock
	}
	for _, u := range m.Users {
		if u.Username == username {
			return models.User{}, ErrDuplicate
		}
	}
	u := models.User{ID: m.id(), Username: username, Password: passwordHash}
	m.Users[u.ID] = u
	return u, nil
}

func (m *MockStore) FindUserByID(id int) (*models.User, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	if u, ok := m.Users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *MockStore) FindUserByUsername(username string) (*models.User, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	for _, u := range m.Users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MockStore) DeleteUser(id int) error {
	if m.ShouldFail {
		return errMock
	}
	delete(m.Users, id)
	return nil
}

// --- freets ---

func (m *MockStore) CreateFreet(authorID int, content string) (models.Freet, error) {
	if m.ShouldFail {
		return models.Freet{}, errMock
	}
	f := models.Freet{ID: m.id(), AuthorID: authorID, Content: content, CreatedAt: time.Now()}
	m.Freets[f.ID] = f
	return f, nil
}

func (m *MockStore) FindFreetByID(id int) (*models.Freet, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	if f, ok := m.Freets[id]; ok {
		return &f, nil
	}
	return nil, nil
}

func (m *MockStore) FindAllFreets() ([]models.Freet, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	var freets []models.Freet
	for _, f := range m.Freets {
		freets = append(freets, f)
	}
	return freets, nil
}

func (m *MockStore) FindFreetsByAuthorID(authorID int) ([]models.Freet, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	var freets []models.Freet
	for _, f := range m.Freets {
		if f.AuthorID == authorID {
			freets = append(freets, f)
		}
	}
	return freets, nil
}

func (m *MockStore) DeleteFreet(id int) error {
	if m.ShouldFail {
		return errMock
	}
	delete(m.Freets, id)
	return nil
}

// --- follower barriers ---

func (m *MockStore) CreateBarrier(username, passcode string) (models.FollowerBarrier, error) {
	if m.ShouldFail {
		return models.FollowerBarrier{}, errMock
	}
	if _, ok := m.Barriers[username]; ok {
		return models.FollowerBarrier{}, ErrDuplicate
	}
	b := models.FollowerBarrier{ID: m.id(), Username: username, Passcode: passcode}
	m.Barriers[username] = b
	return b, nil
}

func (m *MockStore) FindBarrierByUsername(username string) (*models.FollowerBarrier, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	if b, ok := m.Barriers[username]; ok {
		return &b, nil
	}
	return nil, nil
}

func (m *MockStore) UpdateBarrierPasscode(username, passcode string) (models.FollowerBarrier, error) {
	if m.ShouldFail {
		return models.FollowerBarrier{}, errMock
	}
	b := m.Barriers[username]
	b.Passcode = passcode
	m.Barriers[username] = b
	return b, nil
}

func (m *MockStore) DeleteBarrier(username string) error {
	if m.ShouldFail {
		return errMock
	}
	delete(m.Barriers, username)
	return nil
}

// --- follow edges ---

func (m *MockStore) CreateFollowing(follower, followee string) (models.Following, error) {
	if m.ShouldFail {
		return models.Following{}, errMock
	}
	for _, e := range m.Edges {
		if e.Username == follower && e.Following == followee {
			return models.Following{}, ErrDuplicate
		}
	}
	f := models.Following{ID: m.id(), Username: follower, Following: followee}
	m.Edges[f.ID] = f
	return f, nil
}

func (m *MockStore) FindEdge(follower, followee string) (*models.Following, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	for _, e := range m.Edges {
		if e.Username == follower && e.Following == followee {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (m *MockStore) ListFollowing(username string) ([]models.Following, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	var edges []models.Following
	for _, e := range m.Edges {
		if e.Username == username {
			edges = append(edges, e)
		}
	}
	return edges, nil
}

func (m *MockStore) ListFollowers(username string) ([]models.Following, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	var edges []models.Following
	for _, e := range m.Edges {
		if e.Following == username {
			edges = append(edges, e)
		}
	}
	return edges, nil
}

func (m *MockStore) DeleteEdge(follower, followee string) error {
	if m.ShouldFail {
		return errMock
	}
	for id, e := range m.Edges {
		if e.Username == follower && e.Following == followee {
			delete(m.Edges, id)
		}
	}
	return nil
}

func (m *MockStore) DeleteAllByFollower(username string) error {
	if m.ShouldFail {
		return errMock
	}
	for id, e := range m.Edges {
		if e.Username == username {
			delete(m.Edges, id)
		}
	}
	return nil
}

func (m *MockStore) DeleteAllByFollowee(username string) error {
	if m.ShouldFail {
		return errMock
	}
	for id, e := range m.Edges {
		if e.Following == username {
			delete(m.Edges, id)
		}
	}
	return nil
}

// --- interactions ---

func (m *MockStore) CreateInteraction(authorID int, interactionType string, freetID int, content string) (models.Interaction, error) {
	if m.ShouldFail {
		return models.Interaction{}, errMock
	}
	in := models.Interaction{ID: m.id(), AuthorID: authorID, Type: interactionType, FreetID: freetID, Content: content}
	m.Interactions[in.ID] = in
	return in, nil
}

func (m *MockStore) FindAllInteractions() ([]models.Interaction, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	var interactions []models.Interaction
	for _, in := range m.Interactions {
		interactions = append(interactions, in)
	}
	return interactions, nil
}

func (m *MockStore) FindInteractionByID(id int) (*models.Interaction, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	if in, ok := m.Interactions[id]; ok {
		return &in, nil
	}
	return nil, nil
}

func (m *MockStore) FindInteractionsByFreetID(freetID int) ([]models.Interaction, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	var interactions []models.Interaction
	for _, in := range m.Interactions {
		if in.FreetID == freetID {
			interactions = append(interactions, in)
		}
	}
	return interactions, nil
}

func (m *MockStore) FindInteractionsByAuthorID(authorID int) ([]models.Interaction, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	var interactions []models.Interaction
	for _, in := range m.Interactions {
		if in.AuthorID == authorID {
			interactions = append(interactions, in)
		}
	}
	return interactions, nil
}

func (m *MockStore) CountInteractionsByType(freetID int, interactionType string) (int, error) {
	interactions, err := m.FindInteractionsByFreetID(freetID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, in := range interactions {
		if in.Type == interactionType {
			count++
		}
	}
	return count, nil
}

func (m *MockStore) HasLikeOrDislike(authorID, freetID int) (bool, error) {
	interactions, err := m.FindInteractionsByFreetID(freetID)
	if err != nil {
		return false, err
	}
	for _, in := range interactions {
		if in.AuthorID != authorID {
			continue
		}
		if in.Type == models.InteractionLike || in.Type == models.InteractionDislike {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockStore) UpdateInteractionContent(id int, content string) (models.Interaction, error) {
	if m.ShouldFail {
		return models.Interaction{}, errMock
	}
	in := m.Interactions[id]
	in.Content = content
	m.Interactions[id] = in
	return in, nil
}

func (m *MockStore) DeleteInteraction(id int) error {
	if m.ShouldFail {
		return errMock
	}
	delete(m.Interactions, id)
	return nil
}

func (m *MockStore) DeleteAllByFreetID(freetID int) error {
	if m.ShouldFail {
		return errMock
	}
	for id, in := range m.Interactions {
		if in.FreetID == freetID {
			delete(m.Interactions, id)
		}
	}
	return nil
}

// --- profiles ---

func (m *MockStore) CreateProfile(userID int, picture, bio string) (models.Profile, error) {
	if m.ShouldFail {
		return models.Profile{}, errMock
	}
	if _, ok := m.Profiles[userID]; ok {
		return models.Profile{}, ErrDuplicate
	}
	p := models.Profile{ID: m.id(), UserID: userID, Picture: picture, Bio: bio}
	m.Profiles[userID] = p
	return p, nil
}

func (m *MockStore) FindProfileByUserID(userID int) (*models.Profile, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	if p, ok := m.Profiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *MockStore) FindAllProfiles() ([]models.Profile, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	var profiles []models.Profile
	for _, p := range m.Profiles {
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (m *MockStore) UpdateProfile(userID int, bio, picture *string) (models.Profile, error) {
	if m.ShouldFail {
		return models.Profile{}, errMock
	}
	p := m.Profiles[userID]
	if bio != nil {
		p.Bio = *bio
	}
	if picture != nil {
		p.Picture = *picture
	}
	m.Profiles[userID] = p
	return p, nil
}

func (m *MockStore) DeleteProfile(userID int) error {
	if m.ShouldFail {
		return errMock
	}
	delete(m.Profiles, userID)
	return nil
}

// --- device tokens ---

func (m *MockStore) SaveDeviceToken(userID int, token string) error {
	if m.ShouldFail {
		return errMock
	}
	for _, t := range m.Tokens[userID] {
		if t == token {
			return nil
		}
	}
	m.Tokens[userID] = append(m.Tokens[userID], token)
	return nil
}

func (m *MockStore) DeviceTokensByUserID(userID int) ([]string, error) {
	if m.ShouldFail {
		return nil, errMock
	}
	return m.Tokens[userID], nil
}

func (m *MockStore) DeleteDeviceToken(token string) error {
	if m.ShouldFail {
		return errMock
	}
	for userID, tokens := range m.Tokens {
		kept := tokens[:0]
		for _, t := range tokens {
			if t != token {
				kept = append(kept, t)
			}
		}
		m.Tokens[userID] = kept
	}
	return nil
}
