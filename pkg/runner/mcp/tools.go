package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListEntriesTool(srv, svc)
	registerSearchEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerToggleTool(srv, "toggle_favorite", "Toggle the favorite mark of an entry.", svc.ToggleFavorite)
	registerToggleTool(srv, "toggle_bookmark", "Toggle the bookmark mark of an entry.", svc.ToggleBookmark)
	registerListFavoritesTool(srv, svc)
	registerListRecentTool(srv, svc)
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List every supplication in the catalog in id order."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := svc.ListEntries(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": entries,
			"count":   len(entries),
		})
	})
}

func registerSearchEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search supplications by case-insensitive substring of title, Somali or Arabic text."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search text. An empty query matches every entry."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Query string `json:"query"`
			Limit int    `json:"limit"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Limit <= 0 {
			args.Limit = 20
		}

		results, err := svc.SearchEntries(ctx, args.Query, args.Limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   args.Query,
			"limit":   args.Limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single supplication with its previous and next ids."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Entry id to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireID(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		detail, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(detail)
	})
}

func registerToggleTool(srv *server.MCPServer, name, description string, toggle func(context.Context, int) (*ToggleResult, error)) {
	tool := mcp.NewTool(
		name,
		mcp.WithDescription(description+" Requires persistence to be enabled."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Entry id to toggle."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireID(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := toggle(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(result)
	})
}

func registerListFavoritesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_favorites",
		mcp.WithDescription("List favorite supplications in id order."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := svc.Favorites(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"favorites": entries,
			"count":     len(entries),
		})
	})
}

func registerListRecentTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_recent",
		mcp.WithDescription("List recently viewed supplications, most recent first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := svc.Recent(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"recent": entries,
			"count":  len(entries),
		})
	})
}

func requireID(request mcp.CallToolRequest) (int, error) {
	var args struct {
		ID int `json:"id"`
	}
	if err := request.BindArguments(&args); err != nil {
		return 0, fmt.Errorf("invalid arguments: %v", err)
	}
	if args.ID <= 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return args.ID, nil
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
