package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sghaida/odi/di"

	"storefront-client/clients"
	"storefront-client/common/apierrors"
	"storefront-client/common/logger"
	"storefront-client/config"
	"storefront-client/dashboards"
	"storefront-client/models"
	"storefront-client/session"
	"storefront-client/storage"
	"storefront-client/stores"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	config.LoadConfig()
	logger.Initialize(config.AppConfig.Env)
	defer logger.Log.Sync()

	reg, err := buildRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Boot-time token check: a 401 clears the stored session, anything else
	// leaves it alone.
	sess := reg.MustGet("session").(*session.Session)
	if sess.State() != session.StateAnonymous {
		sess.Verify(ctx)
	}

	if err := dispatch(ctx, reg, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", apierrors.UserMessage(err))
		os.Exit(1)
	}
}

// buildRegistry wires the component graph. Stores and the session are plain
// injected objects resolved from the registry, never package singletons.
func buildRegistry() (*di.MapRegistry, error) {
	cfg := config.AppConfig

	st, err := storage.NewFileStorage(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	api := clients.New(cfg.APIBaseURL,
		clients.WithTimeout(cfg.HTTPTimeout),
		clients.WithLogger(logger.Log),
		clients.WithBreaker(),
	)

	authClient := clients.NewAuthClient(api)
	productClient := clients.NewProductClient(api)
	orderClient := clients.NewOrderClient(api)
	withdrawalClient := clients.NewWithdrawalClient(api)
	referralClient := clients.NewReferralClient(api)

	sess := session.New(authClient, st, logger.Log)
	cart := stores.NewCartStore(st, logger.Log)
	wishlist := stores.NewWishlistStore(st, logger.Log)

	reg := di.NewMapRegistry().
		Provide("session", sess).
		Provide("cart", cart).
		Provide("wishlist", wishlist).
		Provide("shop", dashboards.NewShop(productClient, orderClient, sess, cart, wishlist, logger.Log)).
		Provide("vendor", dashboards.NewVendor(productClient, orderClient, withdrawalClient, sess, logger.Log)).
		Provide("ops", dashboards.NewOps(orderClient, sess, logger.Log)).
		Provide("admin", dashboards.NewAdmin(withdrawalClient, orderClient, sess, logger.Log)).
		Provide("referral", dashboards.NewReferral(referralClient, sess, logger.Log))

	return reg, nil
}

func dispatch(ctx context.Context, reg *di.MapRegistry, command string, args []string) error {
	switch command {
	case "login":
		return cmdLogin(ctx, reg, args)
	case "register":
		return cmdRegister(ctx, reg, args)
	case "logout":
		reg.MustGet("session").(*session.Session).Logout()
		fmt.Println("Logged out.")
		return nil
	case "whoami":
		return cmdWhoami(reg)
	case "shop":
		return cmdShop(ctx, reg, args)
	case "cart":
		return cmdCart(ctx, reg, args)
	case "wishlist":
		return cmdWishlist(ctx, reg, args)
	case "vendor":
		return cmdVendor(ctx, reg, args)
	case "ops":
		return cmdOps(ctx, reg, args)
	case "admin":
		return cmdAdmin(ctx, reg, args)
	case "referral":
		return cmdReferral(ctx, reg, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func cmdLogin(ctx context.Context, reg *di.MapRegistry, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	fs.Parse(args)

	sess := reg.MustGet("session").(*session.Session)
	if err := sess.Login(ctx, *username, *password); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", sess.User().Username)
	return nil
}

func cmdRegister(ctx context.Context, reg *di.MapRegistry, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("u", "", "username")
	email := fs.String("e", "", "email")
	password := fs.String("p", "", "password")
	referral := fs.String("r", "", "referral code (optional)")
	role := fs.String("role", models.RoleCustomer, "account role")
	fs.Parse(args)

	sess := reg.MustGet("session").(*session.Session)
	err := sess.Register(ctx, models.RegisterRequest{
		Username:     *username,
		Email:        *email,
		Password:     *password,
		Role:         *role,
		ReferralCode: *referral,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Registered and logged in as %s\n", sess.User().Username)
	return nil
}

func cmdWhoami(reg *di.MapRegistry) error {
	sess := reg.MustGet("session").(*session.Session)
	user := sess.User()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s (%s), session %s\n", user.Username, user.Role, sess.State())
	if info, err := session.InspectToken(sess.Token()); err == nil && !info.ExpiresAt.IsZero() {
		fmt.Printf("Token expires %s\n", info.ExpiresAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func cmdShop(ctx context.Context, reg *di.MapRegistry, args []string) error {
	fs := flag.NewFlagSet("shop", flag.ExitOnError)
	search := fs.String("search", "", "filter by name/description")
	category := fs.String("category", "", "filter by category")
	fs.Parse(args)

	shop := reg.MustGet("shop").(*dashboards.Shop)
	if err := shop.Refresh(ctx); err != nil {
		return err
	}

	list := shop.Catalog()
	if *search != "" {
		list = shop.Search(*search)
	} else if *category != "" {
		list = shop.ByCategory(*category)
	}
	return printJSON(list)
}

func cmdCart(ctx context.Context, reg *di.MapRegistry, args []string) error {
	cart := reg.MustGet("cart").(*stores.CartStore)
	shop := reg.MustGet("shop").(*dashboards.Shop)

	if len(args) == 0 {
		args = []string{"show"}
	}
	switch args[0] {
	case "show":
		if err := printJSON(cart.Items()); err != nil {
			return err
		}
		fmt.Printf("Items: %d  Total: %.2f\n", cart.ItemCount(), cart.Total())
		return nil
	case "add":
		id := requireArg(args, 1, "product id")
		if err := shop.Refresh(ctx); err != nil {
			return err
		}
		return shop.AddToCart(id)
	case "rm":
		cart.RemoveItem(requireArg(args, 1, "product id"))
		return nil
	case "qty":
		id := requireArg(args, 1, "product id")
		var qty int
		fmt.Sscanf(requireArg(args, 2, "quantity"), "%d", &qty)
		cart.UpdateQuantity(id, qty)
		return nil
	case "checkout":
		order, err := shop.Checkout(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s created (%s)\n", order.ID, order.Status)
		return nil
	default:
		return fmt.Errorf("unknown cart subcommand %q", args[0])
	}
}

func cmdWishlist(ctx context.Context, reg *di.MapRegistry, args []string) error {
	wishlist := reg.MustGet("wishlist").(*stores.WishlistStore)
	shop := reg.MustGet("shop").(*dashboards.Shop)

	if len(args) == 0 {
		args = []string{"show"}
	}
	switch args[0] {
	case "show":
		return printJSON(wishlist.Items())
	case "add":
		id := requireArg(args, 1, "product id")
		if err := shop.Refresh(ctx); err != nil {
			return err
		}
		return shop.SaveToWishlist(id)
	case "rm":
		wishlist.RemoveItem(requireArg(args, 1, "product id"))
		return nil
	case "clear":
		wishlist.Clear()
		return nil
	default:
		return fmt.Errorf("unknown wishlist subcommand %q", args[0])
	}
}

func cmdVendor(ctx context.Context, reg *di.MapRegistry, args []string) error {
	vendor := reg.MustGet("vendor").(*dashboards.Vendor)

	if len(args) == 0 {
		args = []string{"products"}
	}
	switch args[0] {
	case "products":
		if err := vendor.RefreshProducts(ctx); err != nil {
			return err
		}
		return printJSON(vendor.Products())
	case "orders":
		if err := vendor.RefreshOrders(ctx); err != nil {
			return err
		}
		return printJSON(vendor.Orders())
	case "create":
		payload, err := parseProductPayload(args[1:])
		if err != nil {
			return err
		}
		product, err := vendor.CreateProduct(ctx, payload)
		if err != nil {
			return err
		}
		return printJSON(product)
	case "update":
		id := requireArg(args, 1, "product id")
		payload, err := parseProductPayload(args[2:])
		if err != nil {
			return err
		}
		product, err := vendor.UpdateProduct(ctx, id, payload)
		if err != nil {
			return err
		}
		return printJSON(product)
	case "delete":
		return vendor.DeleteProduct(ctx, requireArg(args, 1, "product id"))
	case "upload":
		id := requireArg(args, 1, "product id")
		var photos []clients.Photo
		for _, path := range args[2:] {
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			photos = append(photos, clients.Photo{Name: filepath.Base(path), Content: content})
		}
		uploaded, err := vendor.UploadPhotos(ctx, id, photos)
		fmt.Printf("Uploaded %d/%d photos\n", len(uploaded), len(photos))
		return err
	case "withdraw":
		var amount float64
		fmt.Sscanf(requireArg(args, 1, "amount"), "%f", &amount)
		w, err := vendor.RequestWithdrawal(ctx, amount)
		if err != nil {
			return err
		}
		fmt.Printf("Withdrawal %s requested (%s)\n", w.ID, w.Status)
		return nil
	default:
		return fmt.Errorf("unknown vendor subcommand %q", args[0])
	}
}

func cmdOps(ctx context.Context, reg *di.MapRegistry, args []string) error {
	ops := reg.MustGet("ops").(*dashboards.Ops)

	if len(args) == 0 {
		args = []string{"orders"}
	}
	switch args[0] {
	case "orders":
		if err := ops.Refresh(ctx); err != nil {
			return err
		}
		return printJSON(ops.Queue())
	case "advance":
		id := requireArg(args, 1, "order id")
		if err := ops.Refresh(ctx); err != nil {
			return err
		}
		order, err := ops.Advance(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s is now %s\n", order.ID, order.Status)
		return nil
	default:
		return fmt.Errorf("unknown ops subcommand %q", args[0])
	}
}

func cmdAdmin(ctx context.Context, reg *di.MapRegistry, args []string) error {
	admin := reg.MustGet("admin").(*dashboards.Admin)

	if len(args) == 0 {
		args = []string{"withdrawals"}
	}
	switch args[0] {
	case "withdrawals":
		if err := admin.RefreshWithdrawals(ctx); err != nil {
			return err
		}
		return printJSON(admin.Withdrawals())
	case "approve":
		_, err := admin.Approve(ctx, requireArg(args, 1, "withdrawal id"))
		return err
	case "reject":
		_, err := admin.Reject(ctx, requireArg(args, 1, "withdrawal id"))
		return err
	case "orders":
		if err := admin.RefreshOrders(ctx); err != nil {
			return err
		}
		return printJSON(admin.Orders())
	default:
		return fmt.Errorf("unknown admin subcommand %q", args[0])
	}
}

func cmdReferral(ctx context.Context, reg *di.MapRegistry, args []string) error {
	referral := reg.MustGet("referral").(*dashboards.Referral)

	if len(args) == 0 {
		args = []string{"links"}
	}
	switch args[0] {
	case "links":
		if err := referral.RefreshLinks(ctx); err != nil {
			return err
		}
		return printJSON(referral.Links())
	case "create":
		link, err := referral.CreateLink(ctx, requireArg(args, 1, "product id"))
		if err != nil {
			return err
		}
		return printJSON(link)
	case "toggle":
		_, err := referral.Toggle(ctx, requireArg(args, 1, "link id"))
		return err
	case "stats":
		stats, err := referral.Stats(ctx)
		if err != nil {
			return err
		}
		return printJSON(stats)
	case "analytics":
		days, err := referral.Analytics(ctx)
		if err != nil {
			return err
		}
		return printJSON(days)
	case "balance":
		balance, err := referral.Balance(ctx)
		if err != nil {
			return err
		}
		return printJSON(balance)
	case "payouts":
		payouts, err := referral.Payouts(ctx)
		if err != nil {
			return err
		}
		return printJSON(payouts)
	case "qr":
		id := requireArg(args, 1, "link id")
		if err := referral.RefreshLinks(ctx); err != nil {
			return err
		}
		png, err := referral.LinkQR(id)
		if err != nil {
			return err
		}
		out := id + ".png"
		if err := os.WriteFile(out, png, 0o644); err != nil {
			return err
		}
		fmt.Println("QR code written to", out)
		return nil
	default:
		return fmt.Errorf("unknown referral subcommand %q", args[0])
	}
}

// parseProductPayload builds the full replacement payload vendor pages send.
func parseProductPayload(args []string) (models.ProductPayload, error) {
	fs := flag.NewFlagSet("product", flag.ContinueOnError)
	name := fs.String("name", "", "product name")
	price := fs.Float64("price", 0, "price")
	image := fs.String("image", "", "image URL")
	category := fs.String("category", "", "category")
	description := fs.String("desc", "", "description")
	inStock := fs.Bool("instock", true, "in stock")
	if err := fs.Parse(args); err != nil {
		return models.ProductPayload{}, err
	}
	return models.ProductPayload{
		Name:        *name,
		Price:       *price,
		Image:       *image,
		Category:    *category,
		Description: *description,
		InStock:     *inStock,
	}, nil
}

func requireArg(args []string, i int, name string) string {
	if len(args) <= i {
		fmt.Fprintf(os.Stderr, "Missing argument: %s\n", name)
		os.Exit(2)
	}
	return args[i]
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: storefront <command> [args]

Commands:
  login -u <user> -p <pass>      authenticate and store the session
  register -u -e -p [-r code]    create an account (optional referral code)
  logout                         clear the stored session
  whoami                         show the current session
  shop [-search q|-category c]   browse the catalog
  cart [show|add|rm|qty|checkout]
  wishlist [show|add|rm|clear]
  vendor [products|orders|create|update|delete|upload|withdraw]
  ops [orders|advance <id>]
  admin [withdrawals|approve|reject|orders]
  referral [links|create|toggle|stats|analytics|balance|payouts|qr]`)
}
