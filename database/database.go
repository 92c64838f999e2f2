package database

import (
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/uno/uno/msg"
)

var players = hashmap.New()

// Connected registers the player behind conn. A player logging in again
// replaces its previous connection.
func Connected(conn Conn, info *model.AuthInfo, delay time.Duration) *Player {
	player := &Player{
		ID:      info.ID,
		Name:    info.Name,
		conn:    conn,
		data:    make(chan *protocol.Packet, 8),
		done:    make(chan struct{}),
		delay:   delay,
		actions: msg.NewActionLog(),
	}
	player.online.Store(true)
	if previous := getPlayer(info.ID); previous != nil {
		previous.Offline()
	}
	players.Set(info.ID, player)
	return player
}

// Disconnected forgets player unless a newer connection took its place.
func Disconnected(player *Player) {
	if current := getPlayer(player.ID); current == player {
		players.Del(player.ID)
	}
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

// OnlinePlayers lists the connected players ordered by id.
func OnlinePlayers() []*Player {
	list := make([]*Player, 0)
	players.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Player))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}
