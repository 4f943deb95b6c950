package watch

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHub(t *testing.T) {
	Convey("snapshot fan-out", t, func() {
		hub := NewHub()

		Convey("subscribers receive broadcasts for their topic only", func() {
			products, cancelP := hub.Subscribe(TopicProducts)
			defer cancelP()
			orders, cancelO := hub.Subscribe(TopicOrders)
			defer cancelO()

			hub.Broadcast(TopicProducts, "snapshot-1")

			select {
			case ev := <-products:
				So(ev.Topic, ShouldEqual, TopicProducts)
				So(ev.Data, ShouldEqual, "snapshot-1")
			case <-time.After(time.Second):
				t.Fatal("product subscriber got nothing")
			}

			select {
			case <-orders:
				t.Fatal("order subscriber received a product snapshot")
			default:
			}
		})

		Convey("cancel removes the subscriber", func() {
			_, cancel := hub.Subscribe(TopicProducts)
			So(hub.Subscribers(TopicProducts), ShouldEqual, 1)

			cancel()
			So(hub.Subscribers(TopicProducts), ShouldEqual, 0)

			Convey("cancel is safe to call twice", func() {
				So(cancel, ShouldNotPanic)
			})
		})

		Convey("a full subscriber buffer does not block the broadcast", func() {
			ch, cancel := hub.Subscribe(TopicBanners)
			defer cancel()

			done := make(chan struct{})
			go func() {
				for i := 0; i < 20; i++ {
					hub.Broadcast(TopicBanners, i)
				}
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("broadcast blocked on a slow subscriber")
			}
			So(len(ch), ShouldBeGreaterThan, 0)
		})
	})
}
