package database

import (
	"fmt"
	stringx "strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/msg"
)

// Conn is the packet connection of a remote player.
type Conn interface {
	Read() (*protocol.Packet, error)
	Write(packet protocol.Packet) error
	Close() error
}

type Player struct {
	ID   int64
	Name string

	conn    Conn
	data    chan *protocol.Packet
	done    chan struct{}
	once    sync.Once
	read    atomic.Bool
	online  atomic.Bool
	delay   time.Duration
	actions *msg.ActionLog
}

// WriteString sends data, pausing first so that clients can keep up.
func (p *Player) WriteString(data string) error {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

// Offline closes the connection and wakes up any pending question. It is safe
// to call more than once.
func (p *Player) Offline() {
	p.once.Do(func() {
		p.online.Store(false)
		close(p.done)
		if err := p.conn.Close(); err != nil {
			log.Error(err)
		}
		Disconnected(p)
	})
}

func (p *Player) Online() bool {
	return p.online.Load()
}

// Listening forwards incoming packets while a question is pending and drops
// them otherwise. It returns when the connection fails or the player goes offline.
func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			return err
		}
		if !p.read.Load() {
			continue
		}
		select {
		case p.data <- pack:
		case <-p.done:
			return nil
		}
	}
}

func (p *Player) AskForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	return p.askForPacket(timeout...)
}

func (p *Player) askForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	var expired <-chan time.Time
	if len(timeout) > 0 {
		timer := time.NewTimer(timeout[0])
		defer timer.Stop()
		expired = timer.C
	}
	var packet *protocol.Packet
	select {
	case packet = <-p.data:
	case <-expired:
		return nil, consts.ErrorsTimeout
	case <-p.done:
		return nil, consts.ErrorsChanClosed
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	single := stringx.ToLower(stringx.TrimSpace(packet.String()))
	if single == "exit" || single == "quit" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return stringx.TrimSpace(packet.String()), nil
}

// StartTransaction opens a question. Answers left over from an expired
// question are discarded first.
func (p *Player) StartTransaction() {
	p.discardPending()
	p.read.Store(true)
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	p.read.Store(false)
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}

func (p *Player) discardPending() {
	for {
		select {
		case <-p.data:
		default:
			return
		}
	}
}
