package main

import (
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lonng/tagcodec"
	"github.com/lonng/tagcodec/internal/log"
	"github.com/lonng/tagcodec/option"
	"github.com/lonng/tagcodec/protocal/args"
	"github.com/urfave/cli/v2"
)

// frame 演示用的线上帧.
// 参数个数随帧显式携带, 传输层不需要理解槽位内容,
// JSON 数组里的 null 对应参数列表中的空位
type frame struct {
	ID   string `json:"id"`
	N    int    `json:"n"`
	Args []any  `json:"args"`
}

func main() {
	app := cli.NewApp()
	app.Name = "EchoDemo"
	app.Description = "Tagcodec echo demo over websocket"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name: "server",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "listen",
					Aliases: []string{"l"},
					Usage:   "Echo service listen address",
					Value:   "127.0.0.1:34580",
				},
			},
			Action: runServer,
		},
		{
			Name: "client",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "server",
					Usage: "echo server address",
					Value: "127.0.0.1:34580",
				},
			},
			Action: runClient,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error("startup server error %v", err)
		os.Exit(1)
	}
}

func newDispatcher(c *cli.Context) *tagcodec.Dispatcher {
	var opts []tagcodec.Option
	if c.Bool("debug") {
		opts = append(opts, tagcodec.WithDebugMode())
	}
	return tagcodec.New(opts...)
}

func runServer(c *cli.Context) error {
	d := newDispatcher(c)
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	http.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("upgrade failure %v", err)
			return
		}
		defer conn.Close()

		for {
			var f frame
			if err := conn.ReadJSON(&f); err != nil {
				return
			}

			// 先按帧里的显式计数展开, 再逐槽位还原为富类型值
			wire, err := d.UnpackArgs(&args.Args{N: f.N, Slots: f.Args})
			if err != nil {
				log.Error("request %s malformed %v", f.ID, err)
				return
			}
			values, err := d.DeserializeArgsAndUnpack(wire...)
			if err != nil {
				log.Error("request %s deserialize failure %v", f.ID, err)
				return
			}
			log.Info("request %s carries %d arguments: %v", f.ID, len(values), values)

			// 原样回声
			packed, err := d.SerializeArgs(values...)
			if err != nil {
				log.Error("request %s serialize failure %v", f.ID, err)
				return
			}
			reply := frame{ID: f.ID, N: packed.N, Args: packed.Slots}
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
	})

	listen := c.String("listen")
	log.Info("Echo server listening at %s", listen)
	return http.ListenAndServe(listen, nil)
}

func runClient(c *cli.Context) error {
	d := newDispatcher(c)
	addr := "ws://" + c.String("server") + "/echo"
	conn, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// 混合参数列表: 标量, 有值和无值的 Option, 字符串, 尾部空位
	packed, err := d.SerializeArgs(42, option.Some("hello"), option.None(), "str", nil)
	if err != nil {
		return err
	}
	f := frame{ID: uuid.NewString(), N: packed.N, Args: packed.Slots}
	log.Info("send request %s with %d arguments", f.ID, f.N)
	if err := conn.WriteJSON(f); err != nil {
		return err
	}

	var reply frame
	if err := conn.ReadJSON(&reply); err != nil {
		return err
	}
	wire, err := d.UnpackArgs(&args.Args{N: reply.N, Slots: reply.Args})
	if err != nil {
		return err
	}
	values, err := d.DeserializeArgsAndUnpack(wire...)
	if err != nil {
		return err
	}
	log.Info("reply %s carries %d arguments: %v", reply.ID, len(values), values)
	return nil
}
